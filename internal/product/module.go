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

package product

import (
	"github.com/lanchonete/fastfood/internal/product/internal/domain"
	"github.com/lanchonete/fastfood/internal/product/internal/service"
	"github.com/lanchonete/fastfood/internal/product/internal/web"
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}

type (
	Service       = service.Service
	Handler       = web.Handler
	AdminHandler  = web.AdminHandler
	Product       = domain.Product
	Category      = domain.Category
	ProductStatus = domain.ProductStatus
)

const (
	CategoryLanche         = domain.CategoryLanche
	CategoryAcompanhamento = domain.CategoryAcompanhamento
	CategoryBebida         = domain.CategoryBebida
	CategorySobremesa      = domain.CategorySobremesa

	StatusOffShelf = domain.StatusOffShelf
	StatusOnShelf  = domain.StatusOnShelf
)

var ErrProductNotFound = service.ErrProductNotFound
