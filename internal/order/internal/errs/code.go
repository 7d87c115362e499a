package errs

var (
	SystemError            = ErrorCode{Code: 515001, Msg: "erro interno do sistema"}
	OrderNotFound          = ErrorCode{Code: 515002, Msg: "pedido não encontrado"}
	InvalidOrderData       = ErrorCode{Code: 515003, Msg: "dados do pedido inválidos"}
	InvalidStatusChange    = ErrorCode{Code: 515004, Msg: "transição de status não permitida"}
	InvalidCheckoutState   = ErrorCode{Code: 515005, Msg: "pedido não está apto para checkout"}
	PaymentNotConfirmed    = ErrorCode{Code: 515006, Msg: "pagamento não confirmado"}
	InvalidPaymentProof    = ErrorCode{Code: 515007, Msg: "prova de pagamento inválida"}
	DuplicatedOrderRequest = ErrorCode{Code: 515008, Msg: "requisição de criação duplicada"}
	CustomerNotFound       = ErrorCode{Code: 515009, Msg: "cliente informado não encontrado"}
	ProductNotFound        = ErrorCode{Code: 515010, Msg: "produto do pedido não encontrado"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
