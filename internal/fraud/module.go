package fraud

import (
	"github.com/ecodeclub/jobhub/internal/fraud/internal/domain"
	"github.com/ecodeclub/jobhub/internal/fraud/internal/service"
	"github.com/ecodeclub/jobhub/internal/fraud/internal/service/remote"
	"github.com/ecodeclub/jobhub/internal/fraud/internal/service/rule"
	"github.com/ecodeclub/jobhub/internal/fraud/internal/web"
)

type (
	Service        = service.Service
	Scorer         = service.Scorer
	JobProfile     = domain.JobProfile
	AnalysisResult = domain.AnalysisResult
	AdminHandler   = web.AdminHandler
	RuleEngine     = rule.Engine
	RemoteScorer   = remote.Scorer
)

var (
	ErrAnalysisUnavailable = service.ErrAnalysisUnavailable

	NewRuleEngine     = rule.NewEngine
	NewRemoteScorer   = remote.NewScorer
	NewFallbackScorer = service.NewFallbackScorer
)

type Module struct {
	Svc      Service
	AdminHdl *AdminHandler
}
