// Copyright 2025 lanchonete
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ioc

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/lanchonete/fastfood/internal/payment/internal/repository"
	"github.com/lanchonete/fastfood/internal/payment/internal/repository/dao"
	"github.com/lanchonete/fastfood/internal/payment/internal/service"
	"github.com/lanchonete/fastfood/internal/payment/internal/service/fake"
	"github.com/lanchonete/fastfood/internal/payment/internal/service/mercadopago"
	"github.com/lanchonete/fastfood/internal/pkg/snowflake"
)

type Config struct {
	// Mode escolhe a implementação do gateway: "fake" ou "mercadopago".
	Mode            string  `yaml:"mode"`
	SnowflakeNodeID int64   `yaml:"snowflakeNodeID"`
	Fake            struct {
		// Ponteiro para distinguir "não configurado" (default 0.95)
		// de um 0% explícito, que é válido para simular recusas.
		SuccessRate *float64 `yaml:"successRate"`
	} `yaml:"fake"`
	MercadoPago struct {
		AccessToken     string `yaml:"accessToken"`
		Sandbox         bool   `yaml:"sandbox"`
		SuccessURL      string `yaml:"successURL"`
		FailureURL      string `yaml:"failureURL"`
		PendingURL      string `yaml:"pendingURL"`
		NotificationURL string `yaml:"notificationURL"`
	} `yaml:"mercadopago"`
}

func InitConfig() Config {
	var cfg Config
	err := econf.UnmarshalKey("payment", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Fake.SuccessRate == nil {
		rate := 0.95
		cfg.Fake.SuccessRate = &rate
	}
	return cfg
}

// InitService monta o gateway escolhido na configuração. A escolha acontece
// aqui, na composição; os orquestradores só veem payment.Service.
func InitService(db *egorm.Component, cfg Config) service.Service {
	repo := repository.NewPaymentRepository(initTablesOnce(db))
	sn, err := snowflake.NewGenerator(cfg.SnowflakeNodeID)
	if err != nil {
		panic(err)
	}
	switch cfg.Mode {
	case "mercadopago":
		if cfg.MercadoPago.AccessToken == "" {
			panic("payment.mercadopago.accessToken não configurado")
		}
		client := mercadopago.NewClient(cfg.MercadoPago.AccessToken)
		return mercadopago.NewPaymentService(client, client, repo, sn, mercadopago.Config{
			SuccessURL:      cfg.MercadoPago.SuccessURL,
			FailureURL:      cfg.MercadoPago.FailureURL,
			PendingURL:      cfg.MercadoPago.PendingURL,
			NotificationURL: cfg.MercadoPago.NotificationURL,
			Sandbox:         cfg.MercadoPago.Sandbox,
		})
	default:
		return fake.NewPaymentService(repo, sn, *cfg.Fake.SuccessRate)
	}
}

var once = &sync.Once{}

func initTablesOnce(db *egorm.Component) dao.PaymentDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewPaymentGORMDAO(db)
}
