package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/lanchonete/fastfood/internal/product/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
	invalidProductResult = ginx.Result{
		Code: errs.InvalidProduct.Code,
		Msg:  errs.InvalidProduct.Msg,
	}
)
