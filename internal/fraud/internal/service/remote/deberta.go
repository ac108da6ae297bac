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

package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/jobhub/internal/fraud/internal/domain"
	"github.com/ecodeclub/jobhub/internal/fraud/internal/service"
	"github.com/pkg/errors"
)

// Scorer 调用远端 DeBERTa 推理服务打分。
// 远端必须返回和 AnalysisResult 完全一致的 JSON 结构，
// 传输失败、非 2xx、缺字段、类型不对、分数越界、
// isFraudulent 和分数阈值对不上，全部按 ErrAnalysisUnavailable 处理，
// 绝不静默退化成默认分数。
type Scorer struct {
	client *http.Client
	url    string
	token  string
}

func NewScorer(url, token string, timeout time.Duration) *Scorer {
	return &Scorer{
		client: &http.Client{Timeout: timeout},
		url:    url,
		token:  token,
	}
}

func (s *Scorer) Name() string {
	return "deberta"
}

// request 岗位内容的请求体，和远端约定的字段
type request struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// response 远端必须返回的形状。全部用指针来区分缺字段和零值。
type response struct {
	IsFraudulent   *bool     `json:"isFraudulent"`
	TrustScore     *int      `json:"trustScore"`
	FlaggedContent *[]string `json:"flaggedContent"`
	Recommendation *string   `json:"recommendation"`
}

func (s *Scorer) Score(ctx context.Context, profile domain.JobProfile) (domain.AnalysisResult, error) {
	body, err := json.Marshal(request{
		Title:        profile.Title,
		Company:      profile.Company,
		Location:     profile.Location,
		Salary:       profile.Salary,
		Description:  profile.Description,
		Requirements: profile.Requirements,
	})
	if err != nil {
		return domain.AnalysisResult{}, errors.Wrap(err, "序列化岗位内容失败")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return domain.AnalysisResult{}, errors.Wrap(err, "构造请求失败")
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.AnalysisResult{}, errors.Wrapf(service.ErrAnalysisUnavailable,
			"调用远端模型失败: %s", err.Error())
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.AnalysisResult{}, errors.Wrapf(service.ErrAnalysisUnavailable,
			"远端模型返回了非预期的状态码 %d", resp.StatusCode)
	}

	var res response
	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return domain.AnalysisResult{}, errors.Wrapf(service.ErrAnalysisUnavailable,
			"解析远端模型响应失败: %s", err.Error())
	}
	if err = s.validate(res); err != nil {
		return domain.AnalysisResult{}, errors.Wrapf(service.ErrAnalysisUnavailable,
			"远端模型响应不符合契约: %s", err.Error())
	}
	return domain.AnalysisResult{
		Fraudulent:     *res.IsFraudulent,
		TrustScore:     *res.TrustScore,
		FlaggedContent: *res.FlaggedContent,
		Recommendation: *res.Recommendation,
	}, nil
}

func (s *Scorer) validate(res response) error {
	if res.IsFraudulent == nil || res.TrustScore == nil ||
		res.FlaggedContent == nil || res.Recommendation == nil {
		return fmt.Errorf("缺少必要字段")
	}
	score := *res.TrustScore
	if score < 0 || score > 100 {
		return fmt.Errorf("trustScore 越界: %d", score)
	}
	// isFraudulent 必须和分数阈值严格耦合
	if *res.IsFraudulent != (score < 50) {
		return fmt.Errorf("isFraudulent=%v 和 trustScore=%d 不一致", *res.IsFraudulent, score)
	}
	return nil
}
