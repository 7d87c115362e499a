package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/lanchonete/fastfood/internal/customer"
	"github.com/lanchonete/fastfood/internal/order"
	"github.com/lanchonete/fastfood/internal/pkg/middleware"
	"github.com/lanchonete/fastfood/internal/product"
	"github.com/lanchonete/fastfood/internal/staff"
)

// initGinxServer monta o servidor do totem. O fluxo do cliente inteiro é
// público; só o cadastro de operadores fica atrás de sessão.
func initGinxServer(sp session.Provider,
	orderHdl *order.Handler,
	customerHdl *customer.Handler,
	productHdl *product.Handler,
	staffHdl *staff.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "lanchonete.com.br")
		},
	}))
	res.Use(middleware.NewMetricsBuilder("fastfood", "web").Build())
	res.GET("/healthz", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})
	orderHdl.PublicRoutes(res.Engine)
	customerHdl.PublicRoutes(res.Engine)
	productHdl.PublicRoutes(res.Engine)
	staffHdl.PublicRoutes(res.Engine)
	// rotas autenticadas da equipe
	res.Use(session.CheckLoginMiddleware())
	staffHdl.PrivateRoutes(res.Engine)
	return res
}
