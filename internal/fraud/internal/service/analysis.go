// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"

	"github.com/ecodeclub/jobhub/internal/fraud/internal/domain"
	"github.com/ecodeclub/jobhub/internal/fraud/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
)

// ErrAnalysisUnavailable 远端打分服务失败或者返回了不符合契约的数据。
// 调用方可以重试或者显式回退到规则引擎，但绝不能当成打分成功处理。
var ErrAnalysisUnavailable = errors.New("分析服务不可用")

// Scorer 打分策略。规则引擎和远端模型都实现这个接口，
// 调用方只依赖 AnalysisResult 的契约，不依赖内部的规则实现。
type Scorer interface {
	Name() string
	Score(ctx context.Context, profile domain.JobProfile) (domain.AnalysisResult, error)
}

//go:generate mockgen -source=./analysis.go -destination=../../mocks/analysis.mock.go -package=fraudmocks -typed=true Service
type Service interface {
	// Analyze 分析单个岗位
	Analyze(ctx context.Context, profile domain.JobProfile) (domain.AnalysisResult, error)
	// AnalyzeBatch 按传入顺序逐个分析一批岗位，返回 id => 结果。
	// 没有 id 的岗位会被跳过；单个岗位分析失败只会丢掉它自己的结果，
	// 不会中断整个批次。
	AnalyzeBatch(ctx context.Context, profiles []domain.JobProfile) map[int64]domain.AnalysisResult
	// Records 管理端：最近的分析记录
	Records(ctx context.Context, offset, limit int) ([]domain.AnalysisRecord, error)
}

type analysisService struct {
	scorer Scorer
	repo   repository.RecordRepo
	logger *elog.Component
}

func NewService(scorer Scorer, repo repository.RecordRepo) Service {
	return &analysisService{
		scorer: scorer,
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *analysisService) Analyze(ctx context.Context, profile domain.JobProfile) (domain.AnalysisResult, error) {
	res, err := s.scorer.Score(ctx, profile)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	// 记录保存失败不影响分析结果，只打日志
	tid := shortuuid.New()
	_, err = s.repo.Save(ctx, domain.AnalysisRecord{
		Tid:            tid,
		JobID:          profile.ID,
		Engine:         s.scorer.Name(),
		TrustScore:     res.TrustScore,
		Fraudulent:     res.Fraudulent,
		FlaggedContent: res.FlaggedContent,
		Recommendation: res.Recommendation,
	})
	if err != nil {
		s.logger.Error("保存分析记录失败",
			elog.String("tid", tid),
			elog.Int64("jobID", profile.ID),
			elog.FieldErr(err))
	}
	return res, nil
}

func (s *analysisService) AnalyzeBatch(ctx context.Context, profiles []domain.JobProfile) map[int64]domain.AnalysisResult {
	results := make(map[int64]domain.AnalysisResult, len(profiles))
	for _, profile := range profiles {
		if profile.ID == 0 {
			continue
		}
		res, err := s.Analyze(ctx, profile)
		if err != nil {
			s.logger.Error("批量分析中单个岗位分析失败",
				elog.Int64("jobID", profile.ID),
				elog.FieldErr(err))
			continue
		}
		results[profile.ID] = res
	}
	return results
}

func (s *analysisService) Records(ctx context.Context, offset, limit int) ([]domain.AnalysisRecord, error) {
	return s.repo.List(ctx, offset, limit)
}
