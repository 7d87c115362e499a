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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lanchonete/fastfood/internal/product/internal/domain"
	"github.com/lanchonete/fastfood/internal/product/internal/repository"
	"github.com/lanchonete/fastfood/internal/product/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var ErrProductNotFound = errors.New("produto não encontrado")

type Service interface {
	Create(ctx context.Context, name, description string, category domain.Category, price int64, image string) (domain.Product, error)
	Update(ctx context.Context, p domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (domain.Product, error)
	// Menu devolve os produtos em linha da categoria, a consulta do totem.
	Menu(ctx context.Context, category domain.Category) ([]domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
}

func NewService(repo repository.ProductRepository, nowFunc func() time.Time) Service {
	return &service{repo: repo, now: nowFunc}
}

type service struct {
	repo repository.ProductRepository
	now  func() time.Time
}

func (s *service) Create(ctx context.Context, name, description string, category domain.Category, price int64, image string) (domain.Product, error) {
	p, err := domain.NewProduct(name, description, category, price, image)
	if err != nil {
		return domain.Product{}, err
	}
	now := s.now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = id
	return p, nil
}

func (s *service) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	cur, err := s.FindById(ctx, p.ID)
	if err != nil {
		return domain.Product{}, err
	}
	updated, err := domain.NewProduct(p.Name, p.Description, p.Category, p.Price, p.Image)
	if err != nil {
		return domain.Product{}, err
	}
	updated.ID = cur.ID
	updated.Status = cur.Status
	updated.Ctime = cur.Ctime
	updated.Utime = s.now().UnixMilli()
	if err := s.repo.Update(ctx, updated); err != nil {
		return domain.Product{}, err
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.FindById(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, s.now().UnixMilli())
}

func (s *service) FindById(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return domain.Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
		}
		return domain.Product{}, err
	}
	return p, nil
}

func (s *service) Menu(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	return s.repo.FindByCategory(ctx, category)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return ps, total, eg.Wait()
}
