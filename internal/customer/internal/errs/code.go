package errs

var (
	SystemError       = ErrorCode{Code: 512001, Msg: "erro interno do sistema"}
	CustomerNotFound  = ErrorCode{Code: 512002, Msg: "cliente não encontrado"}
	InvalidCustomer   = ErrorCode{Code: 512003, Msg: "dados do cliente inválidos"}
	DuplicatedCPF     = ErrorCode{Code: 512004, Msg: "CPF já cadastrado"}
	InvalidCPFPattern = ErrorCode{Code: 512005, Msg: "CPF inválido"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
