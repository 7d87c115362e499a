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
	"strings"
	"time"

	"github.com/lanchonete/fastfood/internal/staff/internal/domain"
	"github.com/lanchonete/fastfood/internal/staff/internal/repository"
	"github.com/lanchonete/fastfood/internal/staff/internal/repository/dao"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("usuário ou senha incorretos")
	ErrStaffNotFound      = errors.New("operador não encontrado")
	ErrWeakPassword       = errors.New("a senha deve ter pelo menos 8 caracteres")
	ErrEmptyUsername      = errors.New("o usuário é obrigatório")
)

type Service interface {
	// Login valida as credenciais e devolve o operador sem o hash.
	Login(ctx context.Context, username, password string) (domain.Staff, error)
	Create(ctx context.Context, username, password, name string, role domain.Role) (domain.Staff, error)
	Profile(ctx context.Context, id int64) (domain.Staff, error)
}

func NewService(repo repository.StaffRepository, nowFunc func() time.Time) Service {
	return &service{repo: repo, now: nowFunc}
}

type service struct {
	repo repository.StaffRepository
	now  func() time.Time
}

func (s *service) Login(ctx context.Context, username, password string) (domain.Staff, error) {
	st, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			// mesma mensagem de senha errada, sem revelar se o usuário existe
			return domain.Staff{}, ErrInvalidCredentials
		}
		return domain.Staff{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(st.Password), []byte(password)); err != nil {
		return domain.Staff{}, ErrInvalidCredentials
	}
	st.Password = ""
	return st, nil
}

func (s *service) Create(ctx context.Context, username, password, name string, role domain.Role) (domain.Staff, error) {
	if strings.TrimSpace(username) == "" {
		return domain.Staff{}, ErrEmptyUsername
	}
	if len(password) < 8 {
		return domain.Staff{}, ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Staff{}, fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}
	now := s.now().UnixMilli()
	st := domain.Staff{
		Username: strings.TrimSpace(username),
		Password: string(hash),
		Name:     name,
		Role:     role,
		Ctime:    now,
		Utime:    now,
	}
	id, err := s.repo.Create(ctx, st)
	if err != nil {
		return domain.Staff{}, err
	}
	st.ID = id
	st.Password = ""
	return st, nil
}

func (s *service) Profile(ctx context.Context, id int64) (domain.Staff, error) {
	st, err := s.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return domain.Staff{}, fmt.Errorf("%w: id %d", ErrStaffNotFound, id)
		}
		return domain.Staff{}, err
	}
	st.Password = ""
	return st, nil
}
