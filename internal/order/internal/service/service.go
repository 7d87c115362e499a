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

	"github.com/gotomicro/ego/core/elog"
	"github.com/lanchonete/fastfood/internal/customer"
	"github.com/lanchonete/fastfood/internal/order/internal/domain"
	"github.com/lanchonete/fastfood/internal/order/internal/event"
	"github.com/lanchonete/fastfood/internal/order/internal/repository"
	"github.com/lanchonete/fastfood/internal/order/internal/repository/dao"
	"github.com/lanchonete/fastfood/internal/payment"
	"github.com/lanchonete/fastfood/internal/pkg/sequencenumber"
	"github.com/lanchonete/fastfood/internal/product"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound           = errors.New("pedido não encontrado")
	ErrCustomerNotFound        = errors.New("cliente informado não encontrado")
	ErrProductNotFound         = errors.New("produto do pedido não encontrado")
	ErrProductUnavailable      = errors.New("produto indisponível no cardápio")
	ErrInvalidCheckoutStatus   = errors.New("o pedido não está no status correto para checkout")
	ErrMissingPaymentProof     = errors.New("é obrigatório fornecer o PreferenceId ou o QrCode para confirmação do pagamento")
	ErrOrderNotAwaitingPayment = errors.New("o pedido não está aguardando pagamento")
	ErrNoPaymentData           = errors.New("o pedido não possui dados de pagamento gerados")
	ErrPreferenceMismatch      = errors.New("PreferenceId fornecido não corresponde ao pedido")
)

// NowFunc fornece o relógio do serviço. A composição injeta um relógio no
// fuso configurado (America/Sao_Paulo) para os carimbos exibidos.
type NowFunc func() time.Time

type Service interface {
	// CreateOrder valida o cliente (quando informado) e resolve cada item
	// do carrinho contra o catálogo, congelando nome e preço no pedido.
	CreateOrder(ctx context.Context, customerID *int64, cart []domain.CartItem) (domain.Order, error)
	FindOrder(ctx context.Context, orderSN string) (domain.Order, error)
	ListOrders(ctx context.Context, offset, limit int, status domain.OrderStatus) ([]domain.Order, int64, error)

	// Checkout emite o identificador de pagamento e move o pedido de
	// Pending para AwaitingPayment. Exatamente uma chamada ao gateway por
	// invocação; repetir o checkout num pedido fora de Pending falha em
	// vez de emitir outra intenção de pagamento.
	Checkout(ctx context.Context, orderSN string) (domain.CheckoutResult, error)

	// ConfirmPayment valida a prova apresentada contra os identificadores
	// gravados e delega a decisão final ao gateway. Recusa do gateway não
	// muda o status e volta como PaymentConfirmed=false.
	ConfirmPayment(ctx context.Context, orderSN, preferenceID, qrCode string) (domain.ConfirmResult, error)

	UpdateStatus(ctx context.Context, orderSN string, status domain.OrderStatus) (domain.Order, error)

	// OrderStatus é a consulta pública de acompanhamento, sem autenticação
	// e sem dados do cliente.
	OrderStatus(ctx context.Context, orderSN string) (domain.StatusInfo, error)

	FindExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, error)
	CloseExpiredOrders(ctx context.Context, ids []int64) error
}

func NewService(repo repository.OrderRepository,
	paymentSvc payment.Service,
	customerSvc customer.Service,
	productSvc product.Service,
	producer event.OrderEventProducer,
	snGenerator *sequencenumber.Generator,
	nowFunc NowFunc) Service {
	return &service{
		repo:        repo,
		paymentSvc:  paymentSvc,
		customerSvc: customerSvc,
		productSvc:  productSvc,
		producer:    producer,
		snGenerator: snGenerator,
		now:         nowFunc,
		l:           elog.DefaultLogger.With(elog.FieldComponent("OrderService")),
	}
}

type service struct {
	repo        repository.OrderRepository
	paymentSvc  payment.Service
	customerSvc customer.Service
	productSvc  product.Service
	producer    event.OrderEventProducer
	snGenerator *sequencenumber.Generator
	now         NowFunc
	l           *elog.Component
}

func (s *service) CreateOrder(ctx context.Context, customerID *int64, cart []domain.CartItem) (domain.Order, error) {
	var cid int64
	if customerID != nil {
		cid = *customerID
		if _, err := s.customerSvc.Profile(ctx, cid); err != nil {
			if errors.Is(err, customer.ErrCustomerNotFound) {
				return domain.Order{}, fmt.Errorf("%w: id %d", ErrCustomerNotFound, cid)
			}
			return domain.Order{}, fmt.Errorf("falha ao validar cliente %d: %w", cid, err)
		}
	}
	items, err := s.resolveCart(ctx, cart)
	if err != nil {
		return domain.Order{}, err
	}
	order, err := domain.NewOrder(customerID, items, s.now())
	if err != nil {
		return domain.Order{}, err
	}
	sn, err := s.snGenerator.Generate(cid)
	if err != nil {
		return domain.Order{}, fmt.Errorf("falha ao gerar número de série do pedido: %w", err)
	}
	order.SN = sn
	order, err = s.repo.CreateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}
	s.produceEvent(ctx, order, 0)
	return order, nil
}

// resolveCart congela nome e preço de catálogo em cada item. O preço enviado
// pelo totem nunca é aceito.
func (s *service) resolveCart(ctx context.Context, cart []domain.CartItem) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(cart))
	for _, ci := range cart {
		p, err := s.productSvc.FindById(ctx, ci.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrProductNotFound) {
				return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, ci.ProductID)
			}
			return nil, fmt.Errorf("falha ao consultar produto %d: %w", ci.ProductID, err)
		}
		if p.Status != product.StatusOnShelf {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, p.Name)
		}
		item, err := domain.NewOrderItem(p.ID, p.Name, p.Price, ci.Quantity)
		if err != nil {
			return nil, fmt.Errorf("item inválido (produto %d): %w", ci.ProductID, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *service) FindOrder(ctx context.Context, orderSN string) (domain.Order, error) {
	return s.findOrder(ctx, orderSN)
}

func (s *service) ListOrders(ctx context.Context, offset, limit int, status domain.OrderStatus) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrders(ctx, offset, limit, status)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrders(ctx, status)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) Checkout(ctx context.Context, orderSN string) (domain.CheckoutResult, error) {
	order, err := s.findOrder(ctx, orderSN)
	if err != nil {
		return domain.CheckoutResult{}, err
	}
	if order.Status != domain.StatusPending {
		return domain.CheckoutResult{}, fmt.Errorf("%w: status atual: %s", ErrInvalidCheckoutStatus, order.Status)
	}

	id, err := s.paymentSvc.GenerateIdentifier(ctx, payment.PaymentOrder{
		ID:     order.ID,
		SN:     order.SN,
		Amount: order.TotalPrice,
	})
	if err != nil {
		return domain.CheckoutResult{}, fmt.Errorf("falha ao gerar identificador de pagamento do pedido %s: %w", orderSN, err)
	}

	now := s.now()
	if err := order.SetQrCode(id.QrCode, now); err != nil {
		return domain.CheckoutResult{}, err
	}
	if err := order.SetPreferenceID(id.PreferenceID, now); err != nil {
		return domain.CheckoutResult{}, err
	}
	if err := order.UpdateStatus(domain.StatusAwaitingPayment, now); err != nil {
		return domain.CheckoutResult{}, err
	}
	if err := s.repo.UpdateOrder(ctx, order, domain.StatusPending); err != nil {
		return domain.CheckoutResult{}, err
	}
	s.l.Info("checkout processado, aguardando confirmação de pagamento",
		elog.String("orderSN", orderSN),
		elog.String("preferenceID", id.PreferenceID))
	s.produceEvent(ctx, order, domain.StatusPending.ToUint8())
	return domain.CheckoutResult{
		OrderSN:      order.SN,
		QrCode:       order.QrCode,
		PreferenceID: order.PreferenceID,
		Status:       order.Status,
		TotalAmount:  order.TotalPrice,
		ProcessedAt:  now,
	}, nil
}

func (s *service) ConfirmPayment(ctx context.Context, orderSN, preferenceID, qrCode string) (domain.ConfirmResult, error) {
	if strings.TrimSpace(preferenceID) == "" && strings.TrimSpace(qrCode) == "" {
		return domain.ConfirmResult{}, ErrMissingPaymentProof
	}
	order, err := s.findOrder(ctx, orderSN)
	if err != nil {
		return domain.ConfirmResult{}, err
	}
	if order.Status != domain.StatusAwaitingPayment {
		return domain.ConfirmResult{}, fmt.Errorf("%w: status atual: %s", ErrOrderNotAwaitingPayment, order.Status)
	}
	if order.QrCode == "" && order.PreferenceID == "" {
		return domain.ConfirmResult{}, ErrNoPaymentData
	}

	if strings.TrimSpace(preferenceID) != "" {
		// PreferenceId divergente rejeita antes de tocar o gateway.
		if order.PreferenceID != "" &&
			!strings.EqualFold(strings.TrimSpace(order.PreferenceID), strings.TrimSpace(preferenceID)) {
			s.l.Warn("PreferenceId divergente",
				elog.String("orderSN", orderSN),
				elog.String("recebido", preferenceID))
			return domain.ConfirmResult{}, ErrPreferenceMismatch
		}
	} else if order.QrCode != "" &&
		!strings.EqualFold(strings.TrimSpace(order.QrCode), strings.TrimSpace(qrCode)) {
		// QR Code divergente só avisa: valores históricos/reformatados são
		// tolerados e a validação final fica com o gateway.
		s.l.Warn("QR Code pode não corresponder, prosseguindo com o gateway",
			elog.String("orderSN", orderSN))
	}

	// A decisão de sim/não é sempre do gateway; o casamento acima é só
	// pré-filtro.
	proof := qrCode
	if strings.TrimSpace(proof) == "" {
		proof = order.QrCode
	}
	confirmed, err := s.paymentSvc.ConfirmPayment(ctx, order.SN, proof)
	if err != nil {
		return domain.ConfirmResult{}, fmt.Errorf("falha ao consultar o gateway para o pedido %s: %w", orderSN, err)
	}

	now := s.now()
	if !confirmed {
		s.l.Warn("pagamento não confirmado pelo gateway",
			elog.String("orderSN", orderSN))
		return domain.ConfirmResult{
			OrderSN:          order.SN,
			Status:           order.Status,
			TotalAmount:      order.TotalPrice,
			ConfirmedAt:      now,
			PaymentConfirmed: false,
		}, nil
	}

	if err := order.UpdateStatus(domain.StatusPaid, now); err != nil {
		return domain.ConfirmResult{}, err
	}
	if err := s.repo.UpdateOrder(ctx, order, domain.StatusAwaitingPayment); err != nil {
		return domain.ConfirmResult{}, err
	}
	s.l.Info("pagamento confirmado",
		elog.String("orderSN", orderSN))
	s.produceEvent(ctx, order, domain.StatusAwaitingPayment.ToUint8())
	return domain.ConfirmResult{
		OrderSN:          order.SN,
		Status:           order.Status,
		TotalAmount:      order.TotalPrice,
		ConfirmedAt:      now,
		PaymentConfirmed: true,
	}, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderSN string, status domain.OrderStatus) (domain.Order, error) {
	order, err := s.findOrder(ctx, orderSN)
	if err != nil {
		return domain.Order{}, err
	}
	previous := order.Status
	if err := order.UpdateStatus(status, s.now()); err != nil {
		return domain.Order{}, err
	}
	if err := s.repo.UpdateOrder(ctx, order, previous); err != nil {
		return domain.Order{}, err
	}
	if previous != order.Status {
		s.produceEvent(ctx, order, previous.ToUint8())
	}
	return order, nil
}

func (s *service) OrderStatus(ctx context.Context, orderSN string) (domain.StatusInfo, error) {
	order, err := s.findOrder(ctx, orderSN)
	if err != nil {
		return domain.StatusInfo{}, err
	}
	return domain.StatusInfo{
		OrderSN:           order.SN,
		Status:            order.Status,
		StatusDescription: order.Status.Description(),
		TotalPrice:        order.TotalPrice,
		CreatedAt:         order.Ctime,
		IsAnonymous:       order.IsAnonymous(),
	}, nil
}

func (s *service) FindExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, error) {
	return s.repo.FindExpiredOrders(ctx, offset, limit, ctime)
}

func (s *service) CloseExpiredOrders(ctx context.Context, ids []int64) error {
	return s.repo.CancelOrders(ctx, ids, s.now().UnixMilli())
}

func (s *service) findOrder(ctx context.Context, orderSN string) (domain.Order, error) {
	order, err := s.repo.FindOrderBySN(ctx, orderSN)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderSN)
		}
		return domain.Order{}, err
	}
	return order, nil
}

// produceEvent nunca derruba a operação: evento é notificação, não parte do
// contrato.
func (s *service) produceEvent(ctx context.Context, order domain.Order, fromStatus uint8) {
	if s.producer == nil {
		return
	}
	var cid int64
	if order.CustomerID != nil {
		cid = *order.CustomerID
	}
	evt := event.OrderEvent{
		OrderSN:    order.SN,
		CustomerID: cid,
		FromStatus: fromStatus,
		ToStatus:   order.Status.ToUint8(),
		TotalPrice: order.TotalPrice,
		OccurredAt: s.now().UnixMilli(),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.l.Warn("falha ao publicar evento do pedido",
			elog.String("orderSN", order.SN),
			elog.FieldErr(err))
	}
}
