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

//go:build wireinject

package job

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobhub/internal/fraud"
	"github.com/ecodeclub/jobhub/internal/job/internal/event"
	"github.com/ecodeclub/jobhub/internal/job/internal/repository"
	"github.com/ecodeclub/jobhub/internal/job/internal/repository/cache"
	"github.com/ecodeclub/jobhub/internal/job/internal/repository/dao"
	"github.com/ecodeclub/jobhub/internal/job/internal/service"
	"github.com/ecodeclub/jobhub/internal/job/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	fraudModule *fraud.Module) (*Module, error) {
	wire.Build(
		InitJobDAO,
		cache.NewJobCache,
		repository.NewJobRepo,
		initModerationProducer,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*fraud.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitJobDAO(db *egorm.Component) dao.JobDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewJobDAO(db)
}

func initModerationProducer(q mq.MQ) event.ModerationEventProducer {
	producer, err := event.NewModerationEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
