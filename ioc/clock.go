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
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/lanchonete/fastfood/internal/order"
)

// initClock produz o relógio usado nos carimbos de pedido. O fuso vem da
// configuração porque a loja e o banco podem rodar em regiões diferentes.
func initClock() order.NowFunc {
	tz := econf.GetString("app.timezone")
	if tz == "" {
		tz = "America/Sao_Paulo"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		panic("fuso horário inválido na configuração: " + tz)
	}
	return func() time.Time {
		return time.Now().In(loc)
	}
}
