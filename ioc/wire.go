//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/jobhub/internal/fraud"
	"github.com/ecodeclub/jobhub/internal/job"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitScorer,
		fraud.InitModule,
		wire.FieldsOf(new(*fraud.Module), "AdminHdl"),
		job.InitModule,
		wire.FieldsOf(new(*job.Module), "Hdl", "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
