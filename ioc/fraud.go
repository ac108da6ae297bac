package ioc

import (
	"time"

	"github.com/ecodeclub/jobhub/internal/fraud"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

// InitScorer 按配置装配打分引擎。
// fraud.engine = rule | remote，remote 可以开 fallback，
// 远端挂了显式回退到本地规则引擎
func InitScorer() fraud.Scorer {
	type Config struct {
		Engine   string `yaml:"engine"`
		Fallback bool   `yaml:"fallback"`
		Remote   struct {
			URL     string        `yaml:"url"`
			Token   string        `yaml:"token"`
			Timeout time.Duration `yaml:"timeout"`
		} `yaml:"remote"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("fraud", &cfg); err != nil {
		panic(err)
	}
	ruleEngine := fraud.NewRuleEngine()
	switch cfg.Engine {
	case "remote":
		remote := fraud.NewRemoteScorer(cfg.Remote.URL, cfg.Remote.Token, cfg.Remote.Timeout)
		if cfg.Fallback {
			return fraud.NewFallbackScorer(remote, ruleEngine)
		}
		return remote
	default:
		elog.Info("使用本地规则引擎打分")
		return ruleEngine
	}
}
