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

type PaymentStatus uint8

const (
	// StatusIssued: identificador emitido, aguardando o cliente pagar.
	StatusIssued PaymentStatus = iota + 1
	// StatusConfirmed: gateway confirmou o pagamento.
	StatusConfirmed
	// StatusDeclined: gateway recusou ou não encontrou o pagamento.
	StatusDeclined
)

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

// Payment é o registro de uma tentativa de checkout junto ao gateway,
// uma linha por identificador emitido.
type Payment struct {
	ID           int64
	SN           string
	OrderID      int64
	OrderSN      string
	TotalAmount  int64 // em centavos
	QrCode       string
	PreferenceID string
	Status       PaymentStatus
	Ctime        int64
	Utime        int64
}

// PaymentOrder é o que o módulo de pedido informa ao gateway no checkout.
// O valor é informativo para o gateway montar a preferência; não é
// revalidado contra o pedido aqui.
type PaymentOrder struct {
	ID     int64
	SN     string
	Amount int64
}

// Identifier é o par devolvido por uma geração de identificador: o QR Code
// pagável e a referência interna do gateway para a mesma tentativa.
type Identifier struct {
	QrCode       string
	PreferenceID string
}
