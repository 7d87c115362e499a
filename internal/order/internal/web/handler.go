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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lanchonete/fastfood/internal/order/internal/domain"
	"github.com/lanchonete/fastfood/internal/order/internal/service"
)

var _ ginx.Handler = &Handler{}

// Handler expõe o fluxo do totem de autoatendimento. Todas as rotas são
// públicas: o totem opera sem login e o acompanhamento é por SN.
type Handler struct {
	svc   service.Service
	cache ecache.Cache
	l     *elog.Component
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{
		svc:   svc,
		cache: cache,
		l:     elog.DefaultLogger.With(elog.FieldComponent("OrderHandler")),
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.B[CreateOrderReq](h.CreateOrder))
	g.POST("/checkout", ginx.B[CheckoutOrderReq](h.Checkout))
	g.POST("/payment/confirm", ginx.B[ConfirmPaymentReq](h.ConfirmPayment))
	g.POST("/status", ginx.B[RetrieveOrderStatusReq](h.RetrieveOrderStatus))
	g.POST("/webhook/mercadopago", ginx.B[MercadoPagoWebhookReq](h.MercadoPagoWebhook))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return duplicatedRequestResult, fmt.Errorf("requisição duplicada: %w", err)
	}
	cart := slice.Map(req.Items, func(idx int, src CartItem) domain.CartItem {
		return domain.CartItem{
			ProductID: src.ProductID,
			Quantity:  src.Quantity,
		}
	})
	var customerID *int64
	if req.CustomerID > 0 {
		customerID = &req.CustomerID
	}
	order, err := h.svc.CreateOrder(ctx.Request.Context(), customerID, cart)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerNotFound):
			return customerNotFoundResult, err
		case errors.Is(err, service.ErrProductNotFound):
			return productNotFoundResult, err
		case errors.Is(err, domain.ErrNoItems),
			errors.Is(err, service.ErrProductUnavailable),
			errors.Is(err, domain.ErrInvalidQuantity):
			return invalidOrderDataResult, err
		default:
			return systemErrorResult, fmt.Errorf("falha ao criar pedido: %w", err)
		}
	}
	return ginx.Result{
		Data: CreateOrderResp{Order: toOrderVO(order)},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("requestID vazio")
	}
	key := fmt.Sprintf("order:create:%s", requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("requestID já utilizado: %s", requestID)
	}
	return h.cache.Set(ctx, key, requestID, time.Minute*10)
}

func (h *Handler) Checkout(ctx *ginx.Context, req CheckoutOrderReq) (ginx.Result, error) {
	res, err := h.svc.Checkout(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return orderNotFoundResult, err
		case errors.Is(err, service.ErrInvalidCheckoutStatus):
			return invalidCheckoutStateResult, err
		default:
			return systemErrorResult, fmt.Errorf("falha no checkout do pedido %s: %w", req.OrderSN, err)
		}
	}
	return ginx.Result{
		Data: CheckoutOrderResp{
			OrderSN:      res.OrderSN,
			QrCode:       res.QrCode,
			PreferenceID: res.PreferenceID,
			Status:       res.Status.ToUint8(),
			StatusName:   res.Status.String(),
			TotalAmount:  res.TotalAmount,
			ProcessedAt:  res.ProcessedAt.UnixMilli(),
		},
	}, nil
}

func (h *Handler) ConfirmPayment(ctx *ginx.Context, req ConfirmPaymentReq) (ginx.Result, error) {
	res, err := h.svc.ConfirmPayment(ctx.Request.Context(), req.OrderSN, req.PreferenceID, req.QrCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return orderNotFoundResult, err
		case errors.Is(err, service.ErrMissingPaymentProof),
			errors.Is(err, service.ErrNoPaymentData),
			errors.Is(err, service.ErrPreferenceMismatch):
			return invalidPaymentProofResult, err
		case errors.Is(err, service.ErrOrderNotAwaitingPayment):
			return invalidStatusChangeResult, err
		default:
			return systemErrorResult, fmt.Errorf("falha na confirmação do pedido %s: %w", req.OrderSN, err)
		}
	}
	result := ginx.Result{
		Data: ConfirmPaymentResp{
			OrderSN:          res.OrderSN,
			Status:           res.Status.ToUint8(),
			StatusName:       res.Status.String(),
			TotalAmount:      res.TotalAmount,
			ConfirmedAt:      res.ConfirmedAt.UnixMilli(),
			PaymentConfirmed: res.PaymentConfirmed,
		},
	}
	if !res.PaymentConfirmed {
		result.Code = paymentNotConfirmedResult.Code
		result.Msg = paymentNotConfirmedResult.Msg
	}
	return result, nil
}

func (h *Handler) RetrieveOrderStatus(ctx *ginx.Context, req RetrieveOrderStatusReq) (ginx.Result, error) {
	info, err := h.svc.OrderStatus(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return orderNotFoundResult, err
		}
		return systemErrorResult, fmt.Errorf("falha ao consultar status do pedido %s: %w", req.OrderSN, err)
	}
	return ginx.Result{
		Data: RetrieveOrderStatusResp{
			OrderSN:           info.OrderSN,
			Status:            info.Status.ToUint8(),
			StatusName:        info.Status.String(),
			StatusDescription: info.StatusDescription,
			TotalPrice:        info.TotalPrice,
			CreatedAt:         info.CreatedAt,
			IsAnonymous:       info.IsAnonymous,
		},
	}, nil
}

// MercadoPagoWebhook recebe a notificação assíncrona de pagamento e dispara a
// confirmação usando o external_reference como SN. O retorno é sempre 200
// para o Mercado Pago não reentregar indefinidamente notificações de pedidos
// já resolvidos.
func (h *Handler) MercadoPagoWebhook(ctx *ginx.Context, req MercadoPagoWebhookReq) (ginx.Result, error) {
	if req.Type != "payment" || req.Data.ExternalReference == "" {
		return ginx.Result{Msg: "OK"}, nil
	}
	res, err := h.svc.ConfirmPayment(ctx.Request.Context(),
		req.Data.ExternalReference, "", req.Data.ID)
	if err != nil {
		h.l.Warn("webhook de pagamento não processado",
			elog.String("externalReference", req.Data.ExternalReference),
			elog.FieldErr(err))
		return ginx.Result{Msg: "OK"}, nil
	}
	h.l.Info("webhook de pagamento processado",
		elog.String("orderSN", res.OrderSN),
		elog.Any("confirmado", res.PaymentConfirmed))
	return ginx.Result{Msg: "OK"}, nil
}

func toOrderVO(order domain.Order) Order {
	var customerID int64
	if order.CustomerID != nil {
		customerID = *order.CustomerID
	}
	return Order{
		SN:         order.SN,
		CustomerID: customerID,
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductID:   src.ProductID,
				ProductName: src.ProductName,
				UnitPrice:   src.UnitPrice,
				Quantity:    src.Quantity,
			}
		}),
		TotalPrice:   order.TotalPrice,
		Status:       order.Status.ToUint8(),
		StatusName:   order.Status.String(),
		QrCode:       order.QrCode,
		PreferenceID: order.PreferenceID,
		Ctime:        order.Ctime,
		Utime:        order.Utime,
	}
}
