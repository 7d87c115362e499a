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

package web

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/lanchonete/fastfood/internal/order/internal/domain"
	"github.com/lanchonete/fastfood/internal/order/internal/service"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler atende o painel da cozinha e do gerente. As rotas passam pelo
// middleware de sessão do servidor administrativo.
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListOrdersReq](h.List))
	g.POST("/detail", ginx.B[RetrieveOrderDetailReq](h.Detail))
	g.POST("/status/update", ginx.B[UpdateOrderStatusReq](h.UpdateStatus))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) List(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	var status domain.OrderStatus
	if req.Status != "" {
		var err error
		status, err = domain.ParseStatus(req.Status)
		if err != nil {
			return invalidOrderDataResult, err
		}
	}
	if req.Limit <= 0 {
		req.Limit = 20
	}
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), req.Offset, req.Limit, status)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req RetrieveOrderDetailReq) (ginx.Result, error) {
	order, err := h.svc.FindOrder(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return orderNotFoundResult, err
		}
		return systemErrorResult, fmt.Errorf("falha ao buscar pedido %s: %w", req.OrderSN, err)
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{Order: toOrderVO(order)},
	}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateOrderStatusReq) (ginx.Result, error) {
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return invalidOrderDataResult, err
	}
	order, err := h.svc.UpdateStatus(ctx.Request.Context(), req.OrderSN, status)
	if err != nil {
		var ite *domain.InvalidTransitionError
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return orderNotFoundResult, err
		case errors.As(err, &ite):
			return ginx.Result{
				Code: invalidStatusChangeResult.Code,
				Msg:  ite.Error(),
			}, err
		default:
			return systemErrorResult, fmt.Errorf("falha ao atualizar status do pedido %s: %w", req.OrderSN, err)
		}
	}
	return ginx.Result{
		Data: UpdateOrderStatusResp{Order: toOrderVO(order)},
	}, nil
}
