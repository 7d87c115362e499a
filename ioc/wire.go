//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/lanchonete/fastfood/internal/customer"
	"github.com/lanchonete/fastfood/internal/order"
	"github.com/lanchonete/fastfood/internal/product"
	"github.com/lanchonete/fastfood/internal/staff"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		initPaymentService,
		initClock,
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl", "CloseExpired"),
		customer.InitModule,
		wire.FieldsOf(new(*customer.Module), "Svc", "Hdl", "AdminHdl"),
		product.InitModule,
		wire.FieldsOf(new(*product.Module), "Svc", "Hdl", "AdminHdl"),
		staff.InitModule,
		wire.FieldsOf(new(*staff.Module), "Hdl"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs)
	return new(App), nil
}
