// Copyright 2025 lanchonete
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package startup

import (
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/lanchonete/fastfood/internal/customer"
	"github.com/lanchonete/fastfood/internal/order"
	"github.com/lanchonete/fastfood/internal/order/internal/service"
	"github.com/lanchonete/fastfood/internal/payment"
	"github.com/lanchonete/fastfood/internal/product"
	testioc "github.com/lanchonete/fastfood/internal/test/ioc"
)

func InitModule(paymentSvc payment.Service, nowFunc service.NowFunc) (*order.Module, error) {
	wire.Build(
		testioc.InitDB,
		testioc.InitMQ,
		testioc.InitCache,
		initCustomerSvc,
		initProductSvc,
		order.InitModule,
	)
	return new(order.Module), nil
}

func initCustomerSvc(db *egorm.Component) customer.Service {
	return customer.InitModule(db).Svc
}

func initProductSvc(db *egorm.Component) product.Service {
	return product.InitModule(db).Svc
}
