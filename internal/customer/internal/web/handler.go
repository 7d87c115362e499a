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
	"github.com/lanchonete/fastfood/internal/customer/internal/domain"
	"github.com/lanchonete/fastfood/internal/customer/internal/service"
)

var _ ginx.Handler = &Handler{}

// Handler atende o cadastro e a identificação do cliente no totem. As rotas
// são públicas: o totem não tem sessão de cliente.
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/customer")
	g.POST("/register", ginx.B[RegisterCustomerReq](h.Register))
	g.POST("/identify", ginx.B[IdentifyCustomerReq](h.Identify))
	g.POST("/profile/update", ginx.B[UpdateProfileReq](h.UpdateProfile))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) Register(ctx *ginx.Context, req RegisterCustomerReq) (ginx.Result, error) {
	c, err := h.svc.Register(ctx.Request.Context(), req.Name, req.CPF, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCPF):
			return invalidCPFResult, err
		case errors.Is(err, domain.ErrEmptyName),
			errors.Is(err, domain.ErrInvalidName),
			errors.Is(err, domain.ErrInvalidEmail):
			return invalidCustomerResult, err
		case errors.Is(err, service.ErrCustomerDuplicate):
			return duplicatedCPFResult, err
		default:
			return systemErrorResult, fmt.Errorf("falha ao cadastrar cliente: %w", err)
		}
	}
	return ginx.Result{Data: CustomerResp{Customer: toCustomerVO(c)}}, nil
}

func (h *Handler) Identify(ctx *ginx.Context, req IdentifyCustomerReq) (ginx.Result, error) {
	c, err := h.svc.Identify(ctx.Request.Context(), req.CPF)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCPF):
			return invalidCPFResult, err
		case errors.Is(err, service.ErrCustomerNotFound):
			return customerNotFoundResult, err
		default:
			return systemErrorResult, fmt.Errorf("falha ao identificar cliente: %w", err)
		}
	}
	return ginx.Result{Data: CustomerResp{Customer: toCustomerVO(c)}}, nil
}

func (h *Handler) UpdateProfile(ctx *ginx.Context, req UpdateProfileReq) (ginx.Result, error) {
	c, err := h.svc.UpdateProfile(ctx.Request.Context(), req.ID, req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerNotFound):
			return customerNotFoundResult, err
		case errors.Is(err, domain.ErrInvalidEmail),
			errors.Is(err, domain.ErrEmptyName),
			errors.Is(err, domain.ErrInvalidName):
			return invalidCustomerResult, err
		default:
			return systemErrorResult, fmt.Errorf("falha ao atualizar cliente: %w", err)
		}
	}
	return ginx.Result{Data: CustomerResp{Customer: toCustomerVO(c)}}, nil
}

// AdminHandler expõe a gestão de cadastros à equipe, atrás do login.
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/customer")
	g.POST("/list", ginx.B[ListCustomersReq](h.List))
	g.POST("/delete", ginx.B[DeleteCustomerReq](h.Delete))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) List(ctx *ginx.Context, req ListCustomersReq) (ginx.Result, error) {
	if req.Limit <= 0 {
		req.Limit = 20
	}
	customers, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListCustomersResp{
			Total: total,
			Customers: slice.Map(customers, func(idx int, src domain.Customer) Customer {
				return toCustomerVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req DeleteCustomerReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			return customerNotFoundResult, err
		}
		return systemErrorResult, fmt.Errorf("falha ao remover cliente: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func toCustomerVO(c domain.Customer) Customer {
	return Customer{
		ID:    c.ID,
		Name:  c.Name,
		CPF:   c.CPF,
		Email: c.Email,
	}
}
