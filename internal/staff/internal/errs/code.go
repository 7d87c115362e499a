package errs

var (
	SystemError        = ErrorCode{Code: 513001, Msg: "erro interno do sistema"}
	InvalidCredentials = ErrorCode{Code: 513002, Msg: "usuário ou senha incorretos"}
	InvalidStaffData   = ErrorCode{Code: 513003, Msg: "dados do operador inválidos"}
	StaffNotFound      = ErrorCode{Code: 513004, Msg: "operador não encontrado"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
