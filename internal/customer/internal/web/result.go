package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/lanchonete/fastfood/internal/customer/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	customerNotFoundResult = ginx.Result{
		Code: errs.CustomerNotFound.Code,
		Msg:  errs.CustomerNotFound.Msg,
	}
	invalidCustomerResult = ginx.Result{
		Code: errs.InvalidCustomer.Code,
		Msg:  errs.InvalidCustomer.Msg,
	}
	duplicatedCPFResult = ginx.Result{
		Code: errs.DuplicatedCPF.Code,
		Msg:  errs.DuplicatedCPF.Msg,
	}
	invalidCPFResult = ginx.Result{
		Code: errs.InvalidCPFPattern.Code,
		Msg:  errs.InvalidCPFPattern.Msg,
	}
)
