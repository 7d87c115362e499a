package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/lanchonete/fastfood/internal/order/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	invalidOrderDataResult = ginx.Result{
		Code: errs.InvalidOrderData.Code,
		Msg:  errs.InvalidOrderData.Msg,
	}
	invalidStatusChangeResult = ginx.Result{
		Code: errs.InvalidStatusChange.Code,
		Msg:  errs.InvalidStatusChange.Msg,
	}
	invalidCheckoutStateResult = ginx.Result{
		Code: errs.InvalidCheckoutState.Code,
		Msg:  errs.InvalidCheckoutState.Msg,
	}
	paymentNotConfirmedResult = ginx.Result{
		Code: errs.PaymentNotConfirmed.Code,
		Msg:  errs.PaymentNotConfirmed.Msg,
	}
	invalidPaymentProofResult = ginx.Result{
		Code: errs.InvalidPaymentProof.Code,
		Msg:  errs.InvalidPaymentProof.Msg,
	}
	duplicatedRequestResult = ginx.Result{
		Code: errs.DuplicatedOrderRequest.Code,
		Msg:  errs.DuplicatedOrderRequest.Msg,
	}
	customerNotFoundResult = ginx.Result{
		Code: errs.CustomerNotFound.Code,
		Msg:  errs.CustomerNotFound.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
)
