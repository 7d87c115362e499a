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
	"github.com/ego-component/egorm"
	"github.com/lanchonete/fastfood/internal/payment"
	paymentioc "github.com/lanchonete/fastfood/internal/payment/ioc"
)

func initPaymentService(db *egorm.Component) payment.Service {
	cfg := paymentioc.InitConfig()
	return paymentioc.InitService(db, cfg)
}
