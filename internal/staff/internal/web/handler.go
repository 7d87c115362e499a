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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/lanchonete/fastfood/internal/staff/internal/domain"
	"github.com/lanchonete/fastfood/internal/staff/internal/service"
)

var _ ginx.Handler = &Handler{}

// Handler autentica a equipe do painel administrativo. O login cria a sessão
// que o middleware das rotas privadas exige.
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/staff")
	g.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/staff")
	g.POST("/create", ginx.BS[CreateStaffReq](h.Create))
	g.GET("/profile", ginx.S(h.Profile))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	st, err := h.svc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return invalidCredentialsResult, err
		}
		return systemErrorResult, fmt.Errorf("falha no login: %w", err)
	}
	_, err = session.NewSessionBuilder(ctx, st.ID).
		SetJwtData(map[string]string{
			"role": st.Role.String(),
		}).Build()
	if err != nil {
		return systemErrorResult, fmt.Errorf("falha ao criar sessão: %w", err)
	}
	return ginx.Result{Data: toProfileVO(st)}, nil
}

// Create cadastra um novo operador. Só gerente logado pode usar.
func (h *Handler) Create(ctx *ginx.Context, req CreateStaffReq, sess session.Session) (ginx.Result, error) {
	if sess.Claims().Get("role").StringOrDefault("") != domain.RoleManager.String() {
		return invalidStaffDataResult, fmt.Errorf("apenas gerentes podem cadastrar operadores")
	}
	role := domain.RoleKitchen
	if req.Role == domain.RoleManager.String() {
		role = domain.RoleManager
	}
	st, err := h.svc.Create(ctx.Request.Context(), req.Username, req.Password, req.Name, role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUsername), errors.Is(err, service.ErrWeakPassword):
			return invalidStaffDataResult, err
		default:
			return systemErrorResult, fmt.Errorf("falha ao cadastrar operador: %w", err)
		}
	}
	return ginx.Result{Data: toProfileVO(st)}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	st, err := h.svc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			return staffNotFoundResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: toProfileVO(st)}, nil
}

func toProfileVO(st domain.Staff) Profile {
	return Profile{
		ID:       st.ID,
		Username: st.Username,
		Name:     st.Name,
		Role:     st.Role.String(),
	}
}
