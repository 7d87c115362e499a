package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/lanchonete/fastfood/internal/staff/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidCredentialsResult = ginx.Result{
		Code: errs.InvalidCredentials.Code,
		Msg:  errs.InvalidCredentials.Msg,
	}
	invalidStaffDataResult = ginx.Result{
		Code: errs.InvalidStaffData.Code,
		Msg:  errs.InvalidStaffData.Msg,
	}
	staffNotFoundResult = ginx.Result{
		Code: errs.StaffNotFound.Code,
		Msg:  errs.StaffNotFound.Msg,
	}
)
