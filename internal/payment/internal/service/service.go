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

	"github.com/lanchonete/fastfood/internal/payment/internal/domain"
)

// Service é o gateway de pagamento visto pelo resto do sistema. A
// implementação (simulada ou Mercado Pago) é escolhida na composição da
// aplicação; nenhum orquestrador ramifica em runtime sobre o provedor.
type Service interface {
	// GenerateIdentifier emite um QR Code pagável e o ID de preferência do
	// gateway para a tentativa de checkout corrente do pedido. Os
	// identificadores carregam um token aleatório para desambiguar
	// checkouts concorrentes.
	GenerateIdentifier(ctx context.Context, order domain.PaymentOrder) (domain.Identifier, error)

	// ConfirmPayment é a decisão autoritativa de sim/não sobre o pagamento.
	// Recusa do gateway é resultado normal (false, nil); erro só para
	// falhas de transporte ou configuração.
	ConfirmPayment(ctx context.Context, orderSN string, proof string) (bool, error)
}
