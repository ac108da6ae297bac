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

package fraud

import (
	"sync"

	"github.com/ecodeclub/jobhub/internal/fraud/internal/repository"
	"github.com/ecodeclub/jobhub/internal/fraud/internal/repository/dao"
	"github.com/ecodeclub/jobhub/internal/fraud/internal/service"
	"github.com/ecodeclub/jobhub/internal/fraud/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

// InitModule scorer 由 ioc 根据配置装配，规则引擎或者远端模型
func InitModule(db *egorm.Component, scorer service.Scorer) (*Module, error) {
	wire.Build(
		InitRecordDAO,
		repository.NewRecordRepo,
		service.NewService,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitRecordDAO(db *egorm.Component) dao.AnalysisRecordDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewAnalysisRecordDAO(db)
}
