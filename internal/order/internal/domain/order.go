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

package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrNoItems             = errors.New("o pedido deve ter pelo menos um item")
	ErrOrderNotPending     = errors.New("o pedido não está mais pendente")
	ErrEmptyQrCode         = errors.New("o QR Code não pode ser vazio")
	ErrEmptyPreferenceID   = errors.New("o ID da preferência não pode ser vazio")
	ErrInvalidProductID    = errors.New("o ID do produto é obrigatório")
	ErrEmptyProductName    = errors.New("o nome do produto é obrigatório")
	ErrInvalidUnitPrice    = errors.New("o preço unitário deve ser maior que zero")
	ErrInvalidQuantity     = errors.New("a quantidade deve ser maior que zero")
	ErrInvalidOrderStatus  = errors.New("status de pedido inválido")
	ErrStatusNotTransition = errors.New("transição de status não permitida")
)

type OrderStatus uint8

const (
	StatusPending OrderStatus = iota + 1
	StatusAwaitingPayment
	StatusPaid
	StatusProcessing
	StatusReady
	StatusCompleted
	StatusCancelled
)

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s OrderStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusAwaitingPayment:
		return "AwaitingPayment"
	case StatusPaid:
		return "Paid"
	case StatusProcessing:
		return "Processing"
	case StatusReady:
		return "Ready"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return fmt.Sprintf("OrderStatus(%d)", uint8(s))
	}
}

// Description é a descrição exibida no acompanhamento público do pedido.
// Cancelled cai de propósito no texto genérico, comportamento que os
// clientes do balcão já conhecem.
func (s OrderStatus) Description() string {
	switch s {
	case StatusPending:
		return "Pedido criado, aguardando pagamento"
	case StatusAwaitingPayment:
		return "Aguardando confirmação do pagamento"
	case StatusPaid:
		return "Pagamento confirmado"
	case StatusProcessing:
		return "Seu pedido está sendo preparado"
	case StatusReady:
		return "Pedido pronto para retirada"
	case StatusCompleted:
		return "Pedido finalizado"
	default:
		return "Status do pedido"
	}
}

// ParseStatus converte o nome textual do status, sem diferenciar maiúsculas.
func ParseStatus(s string) (OrderStatus, error) {
	all := []OrderStatus{
		StatusPending, StatusAwaitingPayment, StatusPaid,
		StatusProcessing, StatusReady, StatusCompleted, StatusCancelled,
	}
	for _, st := range all {
		if strings.EqualFold(st.String(), s) {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidOrderStatus, s)
}

// allowedTransitions é a única fonte de verdade da máquina de estados do
// pedido. Nenhum outro componente muda Status diretamente.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusPending: {
		StatusAwaitingPayment, // checkout emitiu identificador de pagamento
		StatusPaid,            // fluxo antigo, confirmação direta sem QR Code
		StatusCancelled,
	},
	StatusAwaitingPayment: {
		StatusPaid,
		StatusCancelled, // janela de pagamento expirada/abandonada
	},
	StatusPaid: {
		StatusProcessing, // enviado para a cozinha
	},
	StatusProcessing: {
		StatusReady,
		StatusCancelled, // preparo falhou, ex.: falta de insumo
		StatusPending,   // reversão, problema na cozinha e volta para a fila
	},
	StatusReady: {
		StatusCompleted,
	},
}

// CanTransition informa se from→to consta na tabela. Mesmo status é sempre
// um no-op permitido.
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	return slice.Contains(allowedTransitions[from], to)
}

// InvalidTransitionError identifica o status atual e o solicitado.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("a transição do status %s para %s não é permitida", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrStatusNotTransition
}

// CartItem é o que o totem envia: só o produto e a quantidade. Nome e preço
// são resolvidos contra o catálogo na criação do pedido.
type CartItem struct {
	ProductID int64
	Quantity  int64
}

// OrderItem é um value object imutável: snapshot do produto no momento do
// pedido, para que mudanças posteriores no catálogo não afetem pedidos
// históricos. Todos os campos são comparáveis, então a igualdade é por valor.
type OrderItem struct {
	ProductID   int64
	ProductName string
	UnitPrice   int64 // em centavos, 999 representa R$9,99
	Quantity    int64
}

func NewOrderItem(productID int64, productName string, unitPrice int64, quantity int64) (OrderItem, error) {
	if productID <= 0 {
		return OrderItem{}, ErrInvalidProductID
	}
	if strings.TrimSpace(productName) == "" {
		return OrderItem{}, ErrEmptyProductName
	}
	if unitPrice <= 0 {
		return OrderItem{}, ErrInvalidUnitPrice
	}
	if quantity <= 0 {
		return OrderItem{}, ErrInvalidQuantity
	}
	return OrderItem{
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
	}, nil
}

func (i OrderItem) SubTotal() int64 {
	return i.Quantity * i.UnitPrice
}

// WithQuantity devolve um novo item, nunca muta o existente.
func (i OrderItem) WithQuantity(quantity int64) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, ErrInvalidQuantity
	}
	i.Quantity = quantity
	return i, nil
}

// Order é a raiz do agregado. CustomerID nulo significa pedido anônimo;
// quem consome precisa checar a presença antes de dereferenciar.
type Order struct {
	ID           int64
	SN           string
	CustomerID   *int64
	Items        []OrderItem
	Status       OrderStatus
	TotalPrice   int64 // derivado, sempre sum(item.SubTotal())
	QrCode       string
	PreferenceID string
	Ctime        int64
	Utime        int64
}

func NewOrder(customerID *int64, items []OrderItem, now time.Time) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrNoItems
	}
	o := Order{
		CustomerID: customerID,
		Items:      items,
		Status:     StatusPending,
		Ctime:      now.UnixMilli(),
		Utime:      now.UnixMilli(),
	}
	o.recalcTotalPrice()
	return o, nil
}

func (o *Order) IsAnonymous() bool {
	return o.CustomerID == nil
}

// AddItem só é permitido enquanto o pedido ainda está aberto (Pending).
func (o *Order) AddItem(item OrderItem, now time.Time) error {
	if o.Status != StatusPending {
		return fmt.Errorf("%w: não é possível adicionar itens no status %s", ErrOrderNotPending, o.Status)
	}
	o.Items = append(o.Items, item)
	o.recalcTotalPrice()
	o.Utime = now.UnixMilli()
	return nil
}

// RemoveItem remove o item do produto informado. Devolve false quando o
// produto não está no pedido.
func (o *Order) RemoveItem(productID int64, now time.Time) (bool, error) {
	if o.Status != StatusPending {
		return false, fmt.Errorf("%w: não é possível remover itens no status %s", ErrOrderNotPending, o.Status)
	}
	idx := -1
	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
	o.recalcTotalPrice()
	o.Utime = now.UnixMilli()
	return true, nil
}

// UpdateStatus valida a transição contra a tabela; transição ilegal devolve
// *InvalidTransitionError e deixa o pedido intocado.
func (o *Order) UpdateStatus(status OrderStatus, now time.Time) error {
	if !CanTransition(o.Status, status) {
		return &InvalidTransitionError{From: o.Status, To: status}
	}
	o.Status = status
	o.Utime = now.UnixMilli()
	return nil
}

func (o *Order) SetQrCode(qrCode string, now time.Time) error {
	if strings.TrimSpace(qrCode) == "" {
		return ErrEmptyQrCode
	}
	o.QrCode = qrCode
	o.Utime = now.UnixMilli()
	return nil
}

func (o *Order) SetPreferenceID(preferenceID string, now time.Time) error {
	if strings.TrimSpace(preferenceID) == "" {
		return ErrEmptyPreferenceID
	}
	o.PreferenceID = preferenceID
	o.Utime = now.UnixMilli()
	return nil
}

func (o *Order) recalcTotalPrice() {
	var total int64
	for _, it := range o.Items {
		total += it.SubTotal()
	}
	o.TotalPrice = total
}
