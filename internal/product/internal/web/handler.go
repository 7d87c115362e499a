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
	"github.com/lanchonete/fastfood/internal/product/internal/domain"
	"github.com/lanchonete/fastfood/internal/product/internal/service"
)

var _ ginx.Handler = &Handler{}

// Handler serve o cardápio ao totem.
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/menu", ginx.B[MenuReq](h.Menu))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) Menu(ctx *ginx.Context, req MenuReq) (ginx.Result, error) {
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return invalidProductResult, err
	}
	products, err := h.svc.Menu(ctx.Request.Context(), category)
	if err != nil {
		return systemErrorResult, fmt.Errorf("falha ao listar cardápio: %w", err)
	}
	return ginx.Result{
		Data: MenuResp{
			Products: slice.Map(products, func(idx int, src domain.Product) Product {
				return toProductVO(src)
			}),
		},
	}, nil
}

// AdminHandler gerencia o cardápio, rotas atrás do login da equipe.
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/save", ginx.B[SaveProductReq](h.Save))
	g.POST("/delete", ginx.B[DeleteProductReq](h.Delete))
	g.POST("/list", ginx.B[ListProductsReq](h.List))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveProductReq) (ginx.Result, error) {
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return invalidProductResult, err
	}
	var p domain.Product
	if req.ID > 0 {
		p, err = h.svc.Update(ctx.Request.Context(), domain.Product{
			ID:          req.ID,
			Name:        req.Name,
			Description: req.Description,
			Category:    category,
			Price:       req.Price,
			Image:       req.Image,
		})
	} else {
		p, err = h.svc.Create(ctx.Request.Context(), req.Name, req.Description, category, req.Price, req.Image)
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return productNotFoundResult, err
		case errors.Is(err, domain.ErrEmptyName),
			errors.Is(err, domain.ErrInvalidPrice),
			errors.Is(err, domain.ErrInvalidCategory):
			return invalidProductResult, err
		default:
			return systemErrorResult, fmt.Errorf("falha ao salvar produto: %w", err)
		}
	}
	return ginx.Result{Data: SaveProductResp{Product: toProductVO(p)}}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req DeleteProductReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return productNotFoundResult, err
		}
		return systemErrorResult, fmt.Errorf("falha ao remover produto: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListProductsReq) (ginx.Result, error) {
	if req.Limit <= 0 {
		req.Limit = 20
	}
	products, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListProductsResp{
			Total: total,
			Products: slice.Map(products, func(idx int, src domain.Product) Product {
				return toProductVO(src)
			}),
		},
	}, nil
}

func toProductVO(p domain.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category.String(),
		Price:       p.Price,
		Image:       p.Image,
	}
}
