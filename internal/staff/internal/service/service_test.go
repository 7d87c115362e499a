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
	"testing"
	"time"

	"github.com/lanchonete/fastfood/internal/staff/internal/domain"
	"github.com/lanchonete/fastfood/internal/staff/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffRepo struct {
	byUsername map[string]domain.Staff
	nextID     int64
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{byUsername: make(map[string]domain.Staff)}
}

func (f *fakeStaffRepo) Create(_ context.Context, s domain.Staff) (int64, error) {
	if _, ok := f.byUsername[s.Username]; ok {
		return 0, dao.ErrUsernameDuplicado
	}
	f.nextID++
	s.ID = f.nextID
	f.byUsername[s.Username] = s
	return s.ID, nil
}

func (f *fakeStaffRepo) FindByUsername(_ context.Context, username string) (domain.Staff, error) {
	s, ok := f.byUsername[username]
	if !ok {
		return domain.Staff{}, dao.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeStaffRepo) FindById(_ context.Context, id int64) (domain.Staff, error) {
	for _, s := range f.byUsername {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Staff{}, dao.ErrRecordNotFound
}

func newTestService(repo *fakeStaffRepo) Service {
	return NewService(repo, func() time.Time { return time.UnixMilli(1_725_148_800_000) })
}

func TestService_CreateELogin(t *testing.T) {
	t.Parallel()
	repo := newFakeStaffRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), "cozinha01", "senha-forte", "Equipe Cozinha", domain.RoleKitchen)
	require.NoError(t, err)
	assert.Empty(t, created.Password)
	// o hash fica guardado, nunca a senha em claro
	assert.NotEqual(t, "senha-forte", repo.byUsername["cozinha01"].Password)
	assert.NotEmpty(t, repo.byUsername["cozinha01"].Password)

	logged, err := svc.Login(context.Background(), "cozinha01", "senha-forte")
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)
	assert.Equal(t, domain.RoleKitchen, logged.Role)
	assert.Empty(t, logged.Password)

	_, err = svc.Login(context.Background(), "cozinha01", "senha-errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nao-existe", "senha-forte")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Create_Validacao(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeStaffRepo())

	_, err := svc.Create(context.Background(), " ", "senha-forte", "Nome", domain.RoleKitchen)
	assert.ErrorIs(t, err, ErrEmptyUsername)

	_, err = svc.Create(context.Background(), "gerente", "curta", "Nome", domain.RoleManager)
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestService_Create_UsuarioDuplicado(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeStaffRepo())
	_, err := svc.Create(context.Background(), "gerente01", "senha-forte", "Gerente", domain.RoleManager)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "gerente01", "outra-senha", "Outro", domain.RoleManager)
	assert.ErrorIs(t, err, dao.ErrUsernameDuplicado)
}

func TestService_Profile(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeStaffRepo())
	created, err := svc.Create(context.Background(), "gerente01", "senha-forte", "Gerente", domain.RoleManager)
	require.NoError(t, err)

	p, err := svc.Profile(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gerente", p.Name)
	assert.Empty(t, p.Password)

	_, err = svc.Profile(context.Background(), 999)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
