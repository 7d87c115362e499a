// Copyright 2025 lanchonete
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

package customer

import (
	"sync"
	"time"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/lanchonete/fastfood/internal/customer/internal/repository"
	"github.com/lanchonete/fastfood/internal/customer/internal/repository/dao"
	"github.com/lanchonete/fastfood/internal/customer/internal/service"
	"github.com/lanchonete/fastfood/internal/customer/internal/web"
)

func InitModule(db *egorm.Component) *Module {
	wire.Build(
		initTablesOnce,
		repository.NewCustomerRepository,
		nowFunc,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func initTablesOnce(db *egorm.Component) dao.CustomerDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMCustomerDAO(db)
}

func nowFunc() func() time.Time {
	return time.Now
}
