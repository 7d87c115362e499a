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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/lanchonete/fastfood/internal/product/internal/domain"
	"github.com/lanchonete/fastfood/internal/product/internal/repository/dao"
)

type ProductRepository interface {
	Create(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int64, utime int64) error
	FindById(ctx context.Context, id int64) (domain.Product, error)
	FindByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, error)
	Total(ctx context.Context) (int64, error)
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{d: d}
}

type productRepository struct {
	d dao.ProductDAO
}

func (p *productRepository) Create(ctx context.Context, prod domain.Product) (int64, error) {
	return p.d.Create(ctx, p.toEntity(prod))
}

func (p *productRepository) Update(ctx context.Context, prod domain.Product) error {
	return p.d.Update(ctx, p.toEntity(prod))
}

func (p *productRepository) Delete(ctx context.Context, id int64, utime int64) error {
	return p.d.Delete(ctx, id, utime)
}

func (p *productRepository) FindById(ctx context.Context, id int64) (domain.Product, error) {
	prod, err := p.d.FindById(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(prod), nil
}

func (p *productRepository) FindByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	prods, err := p.d.FindByCategory(ctx, category.ToUint8())
	if err != nil {
		return nil, err
	}
	return slice.Map(prods, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	prods, err := p.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(prods, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) Total(ctx context.Context) (int64, error) {
	return p.d.Count(ctx)
}

func (p *productRepository) toEntity(prod domain.Product) dao.Product {
	return dao.Product{
		Id:          prod.ID,
		Name:        prod.Name,
		Description: prod.Description,
		Category:    prod.Category.ToUint8(),
		Price:       prod.Price,
		Image:       prod.Image,
		Status:      prod.Status.ToUint8(),
		Ctime:       prod.Ctime,
		Utime:       prod.Utime,
	}
}

func (p *productRepository) toDomain(prod dao.Product) domain.Product {
	return domain.Product{
		ID:          prod.Id,
		Name:        prod.Name,
		Description: prod.Description,
		Category:    domain.Category(prod.Category),
		Price:       prod.Price,
		Image:       prod.Image,
		Status:      domain.ProductStatus(prod.Status),
		Ctime:       prod.Ctime,
		Utime:       prod.Utime,
	}
}
