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

package order

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	mq "github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/lanchonete/fastfood/internal/customer"
	"github.com/lanchonete/fastfood/internal/order/internal/event"
	"github.com/lanchonete/fastfood/internal/order/internal/job"
	"github.com/lanchonete/fastfood/internal/order/internal/repository"
	"github.com/lanchonete/fastfood/internal/order/internal/repository/dao"
	"github.com/lanchonete/fastfood/internal/order/internal/service"
	"github.com/lanchonete/fastfood/internal/order/internal/web"
	"github.com/lanchonete/fastfood/internal/payment"
	"github.com/lanchonete/fastfood/internal/pkg/sequencenumber"
	"github.com/lanchonete/fastfood/internal/product"
)

func InitModule(db *egorm.Component, q mq.MQ, cache ecache.Cache,
	paymentSvc payment.Service,
	customerSvc customer.Service,
	productSvc product.Service,
	nowFunc service.NowFunc) (*Module, error) {
	wire.Build(
		initTablesOnce,
		repository.NewRepository,
		event.NewOrderEventProducer,
		sequencenumber.NewGenerator,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		initCloseExpiredOrdersJob,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

var once = &sync.Once{}

func initTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

func initCloseExpiredOrdersJob(svc service.Service) *job.CloseExpiredOrdersJob {
	// pedidos sem pagamento há mais de 30 minutos são cancelados
	return job.NewCloseExpiredOrdersJob(svc, 100, 30, time.Minute)
}
