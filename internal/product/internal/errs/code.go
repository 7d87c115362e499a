package errs

var (
	SystemError     = ErrorCode{Code: 514001, Msg: "erro interno do sistema"}
	ProductNotFound = ErrorCode{Code: 514002, Msg: "produto não encontrado"}
	InvalidProduct  = ErrorCode{Code: 514003, Msg: "dados do produto inválidos"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
