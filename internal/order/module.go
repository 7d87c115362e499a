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

package order

import (
	"github.com/lanchonete/fastfood/internal/order/internal/domain"
	"github.com/lanchonete/fastfood/internal/order/internal/job"
	"github.com/lanchonete/fastfood/internal/order/internal/service"
	"github.com/lanchonete/fastfood/internal/order/internal/web"
)

type Module struct {
	Svc          Service
	Hdl          *Handler
	AdminHdl     *AdminHandler
	CloseExpired *CloseExpiredOrdersJob
}

type (
	Service               = service.Service
	NowFunc               = service.NowFunc
	Handler               = web.Handler
	AdminHandler          = web.AdminHandler
	CloseExpiredOrdersJob = job.CloseExpiredOrdersJob

	Order       = domain.Order
	OrderItem   = domain.OrderItem
	CartItem    = domain.CartItem
	OrderStatus = domain.OrderStatus
)

const (
	StatusPending         = domain.StatusPending
	StatusAwaitingPayment = domain.StatusAwaitingPayment
	StatusPaid            = domain.StatusPaid
	StatusProcessing      = domain.StatusProcessing
	StatusReady           = domain.StatusReady
	StatusCompleted       = domain.StatusCompleted
	StatusCancelled       = domain.StatusCancelled
)
