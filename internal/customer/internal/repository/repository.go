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
	"github.com/lanchonete/fastfood/internal/customer/internal/domain"
	"github.com/lanchonete/fastfood/internal/customer/internal/repository/dao"
)

type CustomerRepository interface {
	Create(ctx context.Context, c domain.Customer) (int64, error)
	Update(ctx context.Context, c domain.Customer) error
	Delete(ctx context.Context, id int64) error
	FindByCPF(ctx context.Context, cpf string) (domain.Customer, error)
	FindById(ctx context.Context, id int64) (domain.Customer, error)
	List(ctx context.Context, offset, limit int) ([]domain.Customer, error)
	Total(ctx context.Context) (int64, error)
}

func NewCustomerRepository(d dao.CustomerDAO) CustomerRepository {
	return &customerRepository{d: d}
}

type customerRepository struct {
	d dao.CustomerDAO
}

func (c *customerRepository) Create(ctx context.Context, cu domain.Customer) (int64, error) {
	return c.d.Insert(ctx, c.toEntity(cu))
}

func (c *customerRepository) Update(ctx context.Context, cu domain.Customer) error {
	return c.d.UpdateNonZeroFields(ctx, dao.Customer{
		Id:    cu.ID,
		Name:  cu.Name,
		Email: cu.Email,
		Utime: cu.Utime,
	})
}

func (c *customerRepository) Delete(ctx context.Context, id int64) error {
	return c.d.Delete(ctx, id)
}

func (c *customerRepository) List(ctx context.Context, offset, limit int) ([]domain.Customer, error) {
	cs, err := c.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Customer) domain.Customer {
		return c.toDomain(src)
	}), nil
}

func (c *customerRepository) Total(ctx context.Context) (int64, error) {
	return c.d.Count(ctx)
}

func (c *customerRepository) FindByCPF(ctx context.Context, cpf string) (domain.Customer, error) {
	cu, err := c.d.FindByCPF(ctx, cpf)
	if err != nil {
		return domain.Customer{}, err
	}
	return c.toDomain(cu), nil
}

func (c *customerRepository) FindById(ctx context.Context, id int64) (domain.Customer, error) {
	cu, err := c.d.FindById(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}
	return c.toDomain(cu), nil
}

func (c *customerRepository) toEntity(cu domain.Customer) dao.Customer {
	return dao.Customer{
		Id:    cu.ID,
		Name:  cu.Name,
		CPF:   cu.CPF,
		Email: cu.Email,
		Ctime: cu.Ctime,
		Utime: cu.Utime,
	}
}

func (c *customerRepository) toDomain(cu dao.Customer) domain.Customer {
	return domain.Customer{
		ID:    cu.Id,
		Name:  cu.Name,
		CPF:   cu.CPF,
		Email: cu.Email,
		Ctime: cu.Ctime,
		Utime: cu.Utime,
	}
}
