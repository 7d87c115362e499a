package domain

import "time"

// CheckoutResult é o retorno do checkout: identificadores emitidos pelo
// gateway para a tentativa corrente.
type CheckoutResult struct {
	OrderSN      string
	QrCode       string
	PreferenceID string
	Status       OrderStatus
	TotalAmount  int64
	ProcessedAt  time.Time
}

// ConfirmResult é o retorno da confirmação de pagamento. PaymentConfirmed
// false com Status inalterado é resultado normal, não erro: o cliente pode
// tentar confirmar de novo sem risco de cobrança dupla.
type ConfirmResult struct {
	OrderSN          string
	Status           OrderStatus
	TotalAmount      int64
	ConfirmedAt      time.Time
	PaymentConfirmed bool
}

// StatusInfo é a consulta pública de acompanhamento. Não carrega nenhum
// dado do cliente: pedidos anônimos só informam IsAnonymous.
type StatusInfo struct {
	OrderSN           string
	Status            OrderStatus
	StatusDescription string
	TotalPrice        int64
	CreatedAt         int64
	IsAnonymous       bool
}
