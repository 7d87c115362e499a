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

	"github.com/lanchonete/fastfood/internal/product/internal/domain"
	"github.com/lanchonete/fastfood/internal/product/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products map[int64]domain.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]domain.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, p domain.Product) (int64, error) {
	f.nextID++
	p.ID = f.nextID
	f.products[p.ID] = p
	return p.ID, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p domain.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64, utime int64) error {
	p := f.products[id]
	p.Status = domain.StatusOffShelf
	p.Utime = utime
	f.products[id] = p
	return nil
}

func (f *fakeProductRepo) FindById(_ context.Context, id int64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, dao.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) FindByCategory(_ context.Context, category domain.Category) ([]domain.Product, error) {
	var res []domain.Product
	for _, p := range f.products {
		if p.Category == category && p.Status == domain.StatusOnShelf {
			res = append(res, p)
		}
	}
	return res, nil
}

func (f *fakeProductRepo) List(_ context.Context, offset, limit int) ([]domain.Product, error) {
	res := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		res = append(res, p)
	}
	return res, nil
}

func (f *fakeProductRepo) Total(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func newTestService(repo *fakeProductRepo) Service {
	return NewService(repo, func() time.Time { return time.UnixMilli(1_725_148_800_000) })
}

func TestService_Create(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeProductRepo())

	p, err := svc.Create(context.Background(), "X-Burger", "Hambúrguer com queijo", domain.CategoryLanche, 1595, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, domain.StatusOnShelf, p.Status)

	_, err = svc.Create(context.Background(), "", "", domain.CategoryLanche, 1595, "")
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = svc.Create(context.Background(), "X-Burger", "", domain.CategoryLanche, 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = svc.Create(context.Background(), "X-Burger", "", domain.Category(9), 1595, "")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestService_Menu(t *testing.T) {
	t.Parallel()
	repo := newFakeProductRepo()
	svc := newTestService(repo)
	_, err := svc.Create(context.Background(), "X-Burger", "", domain.CategoryLanche, 1595, "")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "Refrigerante Lata", "", domain.CategoryBebida, 700, "")
	require.NoError(t, err)
	deleted, err := svc.Create(context.Background(), "X-Salada", "", domain.CategoryLanche, 1795, "")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), deleted.ID))

	// fora de linha não aparece no cardápio
	menu, err := svc.Menu(context.Background(), domain.CategoryLanche)
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "X-Burger", menu[0].Name)
}

func TestService_Update(t *testing.T) {
	t.Parallel()
	repo := newFakeProductRepo()
	svc := newTestService(repo)
	created, err := svc.Create(context.Background(), "X-Burger", "", domain.CategoryLanche, 1595, "")
	require.NoError(t, err)

	created.Price = 1695
	updated, err := svc.Update(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, int64(1695), updated.Price)

	_, err = svc.Update(context.Background(), domain.Product{ID: 999, Name: "Nada", Category: domain.CategoryLanche, Price: 100})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestService_Delete_NaoEncontrado(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeProductRepo())
	assert.ErrorIs(t, svc.Delete(context.Background(), 42), ErrProductNotFound)
}
