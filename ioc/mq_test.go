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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Garante que o bloco kafka do config embarcado decodifica na estrutura
// que o InitMQ usa, com nome e partitions por topic.
func TestLoadKafkaConfig(t *testing.T) {
	dir, err := os.Getwd()
	require.NoError(t, err)
	path := filepath.Clean(dir + "/../config/config.yaml")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	err = econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
	require.NoError(t, err)

	cfg := loadKafkaConfig()
	require.Equal(t, "tcp", cfg.Network)
	require.Equal(t, []string{"localhost:9092"}, cfg.Addresses)
	require.Len(t, cfg.Topics, 1)
	require.Equal(t, "order_status_events", cfg.Topics[0].Name)
	require.Equal(t, 1, cfg.Topics[0].Partitions)
}
