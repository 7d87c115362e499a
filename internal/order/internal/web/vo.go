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

package web

// CreateOrderReq cria o pedido no totem. CustomerID zero indica pedido
// anônimo. RequestID evita pedidos duplicados por duplo clique. Nome e
// preço dos itens vêm do catálogo, nunca do cliente.
type CreateOrderReq struct {
	RequestID  string     `json:"requestID"`
	CustomerID int64      `json:"customerID,omitempty"`
	Items      []CartItem `json:"items"`
}

type CartItem struct {
	ProductID int64 `json:"productID"`
	Quantity  int64 `json:"quantity"`
}

type CreateOrderResp struct {
	Order Order `json:"order"`
}

type OrderItem struct {
	ProductID   int64  `json:"productID"`
	ProductName string `json:"productName"`
	UnitPrice   int64  `json:"unitPrice"` // centavos
	Quantity    int64  `json:"quantity"`
}

type Order struct {
	SN           string      `json:"sn"`
	CustomerID   int64       `json:"customerID,omitempty"`
	Items        []OrderItem `json:"items,omitempty"`
	TotalPrice   int64       `json:"totalPrice"`
	Status       uint8       `json:"status"`
	StatusName   string      `json:"statusName"`
	QrCode       string      `json:"qrCode,omitempty"`
	PreferenceID string      `json:"preferenceID,omitempty"`
	Ctime        int64       `json:"ctime"`
	Utime        int64       `json:"utime"`
}

// CheckoutOrderReq inicia a cobrança do pedido.
type CheckoutOrderReq struct {
	OrderSN string `json:"sn"`
}

type CheckoutOrderResp struct {
	OrderSN      string `json:"orderSN"`
	QrCode       string `json:"qrCode"`
	PreferenceID string `json:"preferenceID"`
	Status       uint8  `json:"status"`
	StatusName   string `json:"statusName"`
	TotalAmount  int64  `json:"totalAmount"`
	ProcessedAt  int64  `json:"processedAt"`
}

// ConfirmPaymentReq confirma o pagamento. PreferenceID ou QrCode precisa vir
// preenchido.
type ConfirmPaymentReq struct {
	OrderSN      string `json:"sn"`
	PreferenceID string `json:"preferenceID,omitempty"`
	QrCode       string `json:"qrCode,omitempty"`
}

type ConfirmPaymentResp struct {
	OrderSN          string `json:"orderSN"`
	Status           uint8  `json:"status"`
	StatusName       string `json:"statusName"`
	TotalAmount      int64  `json:"totalAmount"`
	ConfirmedAt      int64  `json:"confirmedAt"`
	PaymentConfirmed bool   `json:"paymentConfirmed"`
}

// RetrieveOrderStatusReq é a consulta pública do painel de acompanhamento.
type RetrieveOrderStatusReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderStatusResp struct {
	OrderSN           string `json:"orderSN"`
	Status            uint8  `json:"status"`
	StatusName        string `json:"statusName"`
	StatusDescription string `json:"statusDescription"`
	TotalPrice        int64  `json:"totalPrice"`
	CreatedAt         int64  `json:"createdAt"`
	IsAnonymous       bool   `json:"isAnonymous"`
}

// MercadoPagoWebhookReq segue o formato de notificação do Mercado Pago,
// que envia o external_reference (nosso SN) dentro de data.
type MercadoPagoWebhookReq struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID                string `json:"id"`
		ExternalReference string `json:"external_reference"`
	} `json:"data"`
}

type ListOrdersReq struct {
	Offset int    `json:"offset,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Status string `json:"status,omitempty"` // vazio lista todos
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type RetrieveOrderDetailReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

// UpdateOrderStatusReq move o pedido na esteira da cozinha. Status é o nome
// textual, ex.: "Processing".
type UpdateOrderStatusReq struct {
	OrderSN string `json:"sn"`
	Status  string `json:"status"`
}

type UpdateOrderStatusResp struct {
	Order Order `json:"order"`
}
