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

	"github.com/lanchonete/fastfood/internal/staff/internal/domain"
	"github.com/lanchonete/fastfood/internal/staff/internal/repository/dao"
)

type StaffRepository interface {
	Create(ctx context.Context, s domain.Staff) (int64, error)
	FindByUsername(ctx context.Context, username string) (domain.Staff, error)
	FindById(ctx context.Context, id int64) (domain.Staff, error)
}

func NewStaffRepository(d dao.StaffDAO) StaffRepository {
	return &staffRepository{d: d}
}

type staffRepository struct {
	d dao.StaffDAO
}

func (s *staffRepository) Create(ctx context.Context, st domain.Staff) (int64, error) {
	return s.d.Insert(ctx, dao.Staff{
		Username: st.Username,
		Password: st.Password,
		Name:     st.Name,
		Role:     st.Role.ToUint8(),
		Ctime:    st.Ctime,
		Utime:    st.Utime,
	})
}

func (s *staffRepository) FindByUsername(ctx context.Context, username string) (domain.Staff, error) {
	st, err := s.d.FindByUsername(ctx, username)
	if err != nil {
		return domain.Staff{}, err
	}
	return s.toDomain(st), nil
}

func (s *staffRepository) FindById(ctx context.Context, id int64) (domain.Staff, error) {
	st, err := s.d.FindById(ctx, id)
	if err != nil {
		return domain.Staff{}, err
	}
	return s.toDomain(st), nil
}

func (s *staffRepository) toDomain(st dao.Staff) domain.Staff {
	return domain.Staff{
		ID:       st.Id,
		Username: st.Username,
		Password: st.Password,
		Name:     st.Name,
		Role:     domain.Role(st.Role),
		Ctime:    st.Ctime,
		Utime:    st.Utime,
	}
}
