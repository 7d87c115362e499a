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

package mercadopago

import (
	"context"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/lanchonete/fastfood/internal/payment/internal/domain"
	"github.com/lanchonete/fastfood/internal/payment/internal/repository"
	"github.com/lanchonete/fastfood/internal/pkg/snowflake"
)

//go:generate mockgen -source=./mercadopago.go -package=mercadopagomocks -destination=./mocks/mercadopago.mock.go -typed PreferenceAPI,PaymentSearchAPI

// PreferenceAPI e PaymentSearchAPI isolam os endpoints usados do Mercado
// Pago, para que o serviço seja testável sem rede.
type PreferenceAPI interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (Preference, error)
}

type PaymentSearchAPI interface {
	SearchPaymentsByExternalReference(ctx context.Context, ref string) ([]PaymentResult, error)
}

type Config struct {
	SuccessURL      string
	FailureURL      string
	PendingURL      string
	NotificationURL string
	// Sandbox troca o init point devolvido no QR Code.
	Sandbox bool
}

// PaymentService integra com o Mercado Pago de verdade: cria a preferência
// no checkout e, na confirmação, consulta os pagamentos pela referência
// externa. "approved"/"authorized" contam como pago; qualquer outra coisa,
// inclusive pagamento não encontrado, conta como não pago e nunca vira erro.
type PaymentService struct {
	prefAPI   PreferenceAPI
	searchAPI PaymentSearchAPI
	repo      repository.PaymentRepository
	sn        *snowflake.Generator
	cfg       Config
	nowFunc   func() time.Time
	l         *elog.Component
}

func NewPaymentService(prefAPI PreferenceAPI,
	searchAPI PaymentSearchAPI,
	repo repository.PaymentRepository,
	sn *snowflake.Generator,
	cfg Config) *PaymentService {
	return &PaymentService{
		prefAPI:   prefAPI,
		searchAPI: searchAPI,
		repo:      repo,
		sn:        sn,
		cfg:       cfg,
		nowFunc:   time.Now,
		l:         elog.DefaultLogger.With(elog.FieldComponent("MercadoPagoPaymentService")),
	}
}

func (s *PaymentService) GenerateIdentifier(ctx context.Context, order domain.PaymentOrder) (domain.Identifier, error) {
	now := s.nowFunc()
	expireAt := now.Add(30 * time.Minute)
	pref, err := s.prefAPI.CreatePreference(ctx, PreferenceRequest{
		Items: []PreferenceItem{
			{
				Title:       fmt.Sprintf("Pedido FastFood #%s", order.SN),
				Description: fmt.Sprintf("Pagamento do pedido #%s", order.SN),
				Quantity:    1,
				CurrencyID:  "BRL",
				UnitPrice:   float64(order.Amount) / 100,
			},
		},
		ExternalReference: order.SN,
		BackURLs: &BackURLs{
			Success: s.cfg.SuccessURL,
			Failure: s.cfg.FailureURL,
			Pending: s.cfg.PendingURL,
		},
		AutoReturn:      "approved",
		NotificationURL: s.cfg.NotificationURL,
		// aprovado ou rejeitado, sem estado pendente
		BinaryMode:     true,
		Expires:        true,
		ExpirationFrom: &now,
		ExpirationTo:   &expireAt,
	})
	if err != nil {
		return domain.Identifier{}, fmt.Errorf("falha ao criar preferência do pedido %s: %w", order.SN, err)
	}

	qrCode := pref.InitPoint
	if s.cfg.Sandbox && pref.SandboxInitPoint != "" {
		qrCode = pref.SandboxInitPoint
	}
	id := domain.Identifier{QrCode: qrCode, PreferenceID: pref.ID}

	nowMilli := now.UnixMilli()
	_, err = s.repo.AddPayment(ctx, domain.Payment{
		SN:           s.sn.Generate(),
		OrderID:      order.ID,
		OrderSN:      order.SN,
		TotalAmount:  order.Amount,
		QrCode:       id.QrCode,
		PreferenceID: id.PreferenceID,
		Status:       domain.StatusIssued,
		Ctime:        nowMilli,
		Utime:        nowMilli,
	})
	if err != nil {
		return domain.Identifier{}, fmt.Errorf("falha ao registrar identificador do pedido %s: %w", order.SN, err)
	}
	s.l.Info("preferência criada",
		elog.String("orderSN", order.SN),
		elog.String("preferenceID", pref.ID))
	return id, nil
}

func (s *PaymentService) ConfirmPayment(ctx context.Context, orderSN string, proof string) (bool, error) {
	results, err := s.searchAPI.SearchPaymentsByExternalReference(ctx, orderSN)
	if err != nil {
		return false, fmt.Errorf("falha ao consultar pagamentos do pedido %s: %w", orderSN, err)
	}
	approved := false
	for _, r := range results {
		if r.Status == "approved" || r.Status == "authorized" {
			approved = true
			break
		}
	}

	status := domain.StatusDeclined
	if approved {
		status = domain.StatusConfirmed
	}
	if err := s.repo.UpdateStatusByOrderSN(ctx, orderSN, status, s.nowFunc().UnixMilli()); err != nil {
		return false, fmt.Errorf("falha ao registrar resultado do pagamento do pedido %s: %w", orderSN, err)
	}
	if approved {
		s.l.Info("pagamento aprovado", elog.String("orderSN", orderSN))
	} else {
		s.l.Warn("pagamento não aprovado", elog.String("orderSN", orderSN))
	}
	return approved, nil
}
