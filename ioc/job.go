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
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/lanchonete/fastfood/internal/order"
)

func initCronJobs(oJob *order.CloseExpiredOrdersJob) []ecron.Ecron {
	return []ecron.Ecron{
		ecron.Load("cron.closeExpiredOrders").Build(ecron.WithJob(jobWrapper(oJob))),
	}
}

// localJob é o contrato dos jobs internos. Eles controlam o próprio prazo
// por lote, então não recebem o contexto do agendador.
type localJob interface {
	Name() string
	Run() error
}

func jobWrapper(job localJob) ecron.FuncJob {
	name := job.Name()
	return func(_ context.Context) error {
		start := time.Now()
		elog.DefaultLogger.Debug("iniciando execução",
			elog.String("cronjob", name))
		err := job.Run()
		if err != nil {
			elog.DefaultLogger.Error("execução falhou",
				elog.FieldErr(err),
				elog.String("cronjob", name))
			return err
		}
		duration := time.Since(start)
		elog.DefaultLogger.Debug("execução concluída",
			elog.String("cronjob", name),
			elog.FieldCost(duration))
		return nil
	}
}
