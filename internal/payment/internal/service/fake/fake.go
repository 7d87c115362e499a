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

package fake

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/lanchonete/fastfood/internal/payment/internal/domain"
	"github.com/lanchonete/fastfood/internal/payment/internal/repository"
	"github.com/lanchonete/fastfood/internal/payment/internal/repository/dao"
	"github.com/lanchonete/fastfood/internal/pkg/snowflake"
	"github.com/lithammer/shortuuid/v4"
)

// PaymentService simula o gateway para desenvolvimento e testes. Grava o
// identificador emitido e, na confirmação, exige que a prova bata com o QR
// Code gravado; depois disso aprova com a taxa de sucesso configurada, para
// exercitar os caminhos de recusa do chamador.
type PaymentService struct {
	repo repository.PaymentRepository
	sn   *snowflake.Generator
	// successRate em [0,1]; padrão de produção do modo fake é 0.95.
	successRate float64
	randFloat   func() float64
	tokenFunc   func() string
	nowFunc     func() time.Time
	l           *elog.Component
}

type Option func(*PaymentService)

func WithRandFloat(f func() float64) Option {
	return func(s *PaymentService) { s.randFloat = f }
}

func WithTokenFunc(f func() string) Option {
	return func(s *PaymentService) { s.tokenFunc = f }
}

func WithNowFunc(f func() time.Time) Option {
	return func(s *PaymentService) { s.nowFunc = f }
}

func NewPaymentService(repo repository.PaymentRepository,
	sn *snowflake.Generator,
	successRate float64,
	opts ...Option) *PaymentService {
	s := &PaymentService{
		repo:        repo,
		sn:          sn,
		successRate: successRate,
		randFloat:   rand.Float64,
		tokenFunc:   func() string { return shortuuid.New() },
		nowFunc:     time.Now,
		l:           elog.DefaultLogger.With(elog.FieldComponent("FakePaymentService")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PaymentService) GenerateIdentifier(ctx context.Context, order domain.PaymentOrder) (domain.Identifier, error) {
	token := s.tokenFunc()
	id := domain.Identifier{
		QrCode:       fmt.Sprintf("https://sandbox.mercadopago.com.br/checkout/v1/redirect?pref_id=FAKE-%s", token),
		PreferenceID: fmt.Sprintf("FAKE-%s", token),
	}
	now := s.nowFunc().UnixMilli()
	_, err := s.repo.AddPayment(ctx, domain.Payment{
		SN:           s.sn.Generate(),
		OrderID:      order.ID,
		OrderSN:      order.SN,
		TotalAmount:  order.Amount,
		QrCode:       id.QrCode,
		PreferenceID: id.PreferenceID,
		Status:       domain.StatusIssued,
		Ctime:        now,
		Utime:        now,
	})
	if err != nil {
		return domain.Identifier{}, fmt.Errorf("falha ao registrar identificador do pedido %s: %w", order.SN, err)
	}
	s.l.Info("QR Code gerado",
		elog.String("orderSN", order.SN),
		elog.String("preferenceID", id.PreferenceID))
	return id, nil
}

func (s *PaymentService) ConfirmPayment(ctx context.Context, orderSN string, proof string) (bool, error) {
	pmt, err := s.repo.FindByOrderSN(ctx, orderSN)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			s.l.Warn("pedido sem identificador emitido",
				elog.String("orderSN", orderSN))
			return false, nil
		}
		return false, err
	}
	if pmt.QrCode == "" || !strings.EqualFold(strings.TrimSpace(pmt.QrCode), strings.TrimSpace(proof)) {
		s.l.Warn("QR Code inválido para o pedido",
			elog.String("orderSN", orderSN))
		return false, nil
	}

	success := s.randFloat() <= s.successRate
	status := domain.StatusDeclined
	if success {
		status = domain.StatusConfirmed
	}
	err = s.repo.UpdateStatusByOrderSN(ctx, orderSN, status, s.nowFunc().UnixMilli())
	if err != nil {
		return false, fmt.Errorf("falha ao registrar resultado do pagamento do pedido %s: %w", orderSN, err)
	}
	if success {
		s.l.Info("pagamento processado com sucesso", elog.String("orderSN", orderSN))
	} else {
		s.l.Warn("falha no processamento do pagamento", elog.String("orderSN", orderSN))
	}
	return success, nil
}
