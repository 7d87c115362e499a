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

	"github.com/lanchonete/fastfood/internal/payment/internal/domain"
	"github.com/lanchonete/fastfood/internal/payment/internal/repository/dao"
)

type PaymentRepository interface {
	AddPayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error)
	UpdateStatusByOrderSN(ctx context.Context, orderSN string, status domain.PaymentStatus, utime int64) error
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func (p *paymentRepository) AddPayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	id, err := p.dao.Insert(ctx, p.toEntity(pmt))
	if err != nil {
		return domain.Payment{}, err
	}
	pmt.ID = id
	return pmt, nil
}

func (p *paymentRepository) FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error) {
	pmt, err := p.dao.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(pmt), nil
}

func (p *paymentRepository) UpdateStatusByOrderSN(ctx context.Context, orderSN string, status domain.PaymentStatus, utime int64) error {
	return p.dao.UpdateStatusByOrderSN(ctx, orderSN, status.ToUint8(), utime)
}

func (p *paymentRepository) toEntity(pmt domain.Payment) dao.Payment {
	return dao.Payment{
		Id:           pmt.ID,
		SN:           pmt.SN,
		OrderId:      pmt.OrderID,
		OrderSn:      pmt.OrderSN,
		TotalAmount:  pmt.TotalAmount,
		QrCode:       pmt.QrCode,
		PreferenceId: pmt.PreferenceID,
		Status:       pmt.Status.ToUint8(),
		Ctime:        pmt.Ctime,
		Utime:        pmt.Utime,
	}
}

func (p *paymentRepository) toDomain(pmt dao.Payment) domain.Payment {
	return domain.Payment{
		ID:           pmt.Id,
		SN:           pmt.SN,
		OrderID:      pmt.OrderId,
		OrderSN:      pmt.OrderSn,
		TotalAmount:  pmt.TotalAmount,
		QrCode:       pmt.QrCode,
		PreferenceID: pmt.PreferenceId,
		Status:       domain.PaymentStatus(pmt.Status),
		Ctime:        pmt.Ctime,
		Utime:        pmt.Utime,
	}
}
