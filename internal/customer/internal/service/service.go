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

	"github.com/lanchonete/fastfood/internal/customer/internal/domain"
	"github.com/lanchonete/fastfood/internal/customer/internal/repository"
	"github.com/lanchonete/fastfood/internal/customer/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var (
	ErrCustomerNotFound  = errors.New("cliente não encontrado")
	ErrCustomerDuplicate = dao.ErrCPFDuplicado
)

type Service interface {
	// Register cadastra o cliente. O CPF pode vir com ou sem máscara.
	Register(ctx context.Context, name, cpf, email string) (domain.Customer, error)
	// Identify busca o cliente pelo CPF, o fluxo de identificação do totem.
	Identify(ctx context.Context, cpf string) (domain.Customer, error)
	Profile(ctx context.Context, id int64) (domain.Customer, error)
	UpdateProfile(ctx context.Context, id int64, name, email string) (domain.Customer, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]domain.Customer, int64, error)
}

func NewService(repo repository.CustomerRepository, nowFunc func() time.Time) Service {
	return &service{repo: repo, now: nowFunc}
}

type service struct {
	repo repository.CustomerRepository
	now  func() time.Time
}

func (s *service) Register(ctx context.Context, name, cpf, email string) (domain.Customer, error) {
	c, err := domain.NewCustomer(name, cpf, email)
	if err != nil {
		return domain.Customer{}, err
	}
	now := s.now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return domain.Customer{}, err
	}
	c.ID = id
	return c, nil
}

func (s *service) Identify(ctx context.Context, cpf string) (domain.Customer, error) {
	normalized, err := domain.NormalizeCPF(cpf)
	if err != nil {
		return domain.Customer{}, err
	}
	c, err := s.repo.FindByCPF(ctx, normalized)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return domain.Customer{}, fmt.Errorf("%w: CPF não cadastrado", ErrCustomerNotFound)
		}
		return domain.Customer{}, err
	}
	return c, nil
}

func (s *service) Profile(ctx context.Context, id int64) (domain.Customer, error) {
	c, err := s.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return domain.Customer{}, fmt.Errorf("%w: id %d", ErrCustomerNotFound, id)
		}
		return domain.Customer{}, err
	}
	return c, nil
}

func (s *service) UpdateProfile(ctx context.Context, id int64, name, email string) (domain.Customer, error) {
	c, err := s.Profile(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}
	// valida o novo conteúdo reaproveitando as regras do cadastro
	updated, err := domain.NewCustomer(orDefault(name, c.Name), c.CPF, orDefault(email, c.Email))
	if err != nil {
		return domain.Customer{}, err
	}
	updated.ID = c.ID
	updated.Ctime = c.Ctime
	updated.Utime = s.now().UnixMilli()
	if err := s.repo.Update(ctx, updated); err != nil {
		return domain.Customer{}, err
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", ErrCustomerNotFound, id)
	}
	return err
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Customer, int64, error) {
	var (
		eg    errgroup.Group
		cs    []domain.Customer
		total int64
	)
	eg.Go(func() error {
		var err error
		cs, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return cs, total, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
