// Copyright 2025 lanchonete
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/lanchonete/fastfood/internal/customer"
	"github.com/lanchonete/fastfood/internal/order"
	"github.com/lanchonete/fastfood/internal/pkg/middleware"
	"github.com/lanchonete/fastfood/internal/product"
)

type AdminServer *egin.Component

// InitAdminServer monta o servidor da retaguarda: acompanhamento de pedidos
// pela cozinha, gestão do cardápio e dos cadastros. Tudo aqui exige sessão
// de funcionário.
func InitAdminServer(
	orderHdl *order.AdminHandler,
	productHdl *product.AdminHandler,
	customerHdl *customer.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
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
	res.Use(middleware.NewMetricsBuilder("fastfood", "admin").Build())
	res.GET("/healthz", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})

	res.Use(session.CheckLoginMiddleware())
	res.Use(StaffPermission())
	orderHdl.PrivateRoutes(res.Engine)
	productHdl.PrivateRoutes(res.Engine)
	customerHdl.PrivateRoutes(res.Engine)
	return res
}

// StaffPermission barra sessões sem papel de equipe. O papel em si
// (cozinha ou gerente) é checado em cada handler.
func StaffPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		xctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(xctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusInternalServerError)
			elog.Error("acesso ilegal à retaguarda", elog.FieldErr(err))
			return
		}
		if sess.Claims().Get("role").StringOrDefault("") == "" {
			ctx.AbortWithStatus(http.StatusInternalServerError)
			elog.Error("acesso ilegal à retaguarda, sessão sem papel de equipe")
			return
		}
	}
}
