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
	"testing"

	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_SuccessRate(t *testing.T) {
	testCases := []struct {
		name     string
		payment  map[string]any
		wantRate float64
	}{
		{
			name: "sem successRate usa o default",
			payment: map[string]any{
				"mode":            "fake",
				"snowflakeNodeID": 1,
			},
			wantRate: 0.95,
		},
		{
			name: "zero explícito é respeitado",
			payment: map[string]any{
				"mode":            "fake",
				"snowflakeNodeID": 1,
				"fake":            map[string]any{"successRate": 0.0},
			},
			wantRate: 0,
		},
		{
			name: "valor configurado é respeitado",
			payment: map[string]any{
				"mode":            "fake",
				"snowflakeNodeID": 1,
				"fake":            map[string]any{"successRate": 0.5},
			},
			wantRate: 0.5,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			econf.Set("payment", tc.payment)
			cfg := InitConfig()
			require.NotNil(t, cfg.Fake.SuccessRate)
			require.Equal(t, tc.wantRate, *cfg.Fake.SuccessRate)
		})
	}
}
