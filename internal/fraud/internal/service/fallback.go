package service

import (
	"context"

	"github.com/ecodeclub/jobhub/internal/fraud/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

// fallbackScorer 远端打分失败时显式回退到本地规则引擎。
// 只有配置里开了 fraud.fallback 才会装配这一层，
// 没开的时候 ErrAnalysisUnavailable 原样往上抛，由调用方决定怎么办。
type fallbackScorer struct {
	primary  Scorer
	fallback Scorer
	logger   *elog.Component
}

func NewFallbackScorer(primary, fallback Scorer) Scorer {
	return &fallbackScorer{
		primary:  primary,
		fallback: fallback,
		logger:   elog.DefaultLogger,
	}
}

func (f *fallbackScorer) Name() string {
	return f.primary.Name() + "+" + f.fallback.Name()
}

func (f *fallbackScorer) Score(ctx context.Context, profile domain.JobProfile) (domain.AnalysisResult, error) {
	res, err := f.primary.Score(ctx, profile)
	if err == nil {
		return res, nil
	}
	f.logger.Warn("远端打分失败，回退到规则引擎",
		elog.String("primary", f.primary.Name()),
		elog.FieldErr(err))
	return f.fallback.Score(ctx, profile)
}
