package event

const (
	topicOrderEvents = "order_status_events"
)

// OrderEvent notifica mudanças relevantes do ciclo de vida do pedido.
// Consumidores típicos: notificação ao cliente e painel da cozinha.
type OrderEvent struct {
	OrderSN    string `json:"orderSN"`
	CustomerID int64  `json:"customerID,omitempty"`
	FromStatus uint8  `json:"fromStatus"`
	ToStatus   uint8  `json:"toStatus"`
	TotalPrice int64  `json:"totalPrice"`
	OccurredAt int64  `json:"occurredAt"`
}
