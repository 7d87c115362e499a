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

package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCPF(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		cpf     string
		want    string
		wantErr bool
	}{
		{name: "válido sem máscara", cpf: "52998224725", want: "52998224725"},
		{name: "válido com máscara", cpf: "529.982.247-25", want: "52998224725"},
		{name: "dígito verificador errado", cpf: "52998224724", wantErr: true},
		{name: "todos os dígitos iguais", cpf: "111.111.111-11", wantErr: true},
		{name: "curto demais", cpf: "5299822472", wantErr: true},
		{name: "letras", cpf: "52998224a25", wantErr: true},
		{name: "vazio", cpf: "", wantErr: true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := NormalizeCPF(tc.cpf)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCPF)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewCustomer(t *testing.T) {
	t.Parallel()
	c, err := NewCustomer("  Maria da Silva ", "529.982.247-25", "maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Maria da Silva", c.Name)
	assert.Equal(t, "52998224725", c.CPF)

	_, err = NewCustomer("", "529.982.247-25", "")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewCustomer("Jo", "529.982.247-25", "")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewCustomer(strings.Repeat("a", 101), "529.982.247-25", "")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewCustomer("Maria", "111.111.111-11", "")
	assert.ErrorIs(t, err, ErrInvalidCPF)

	_, err = NewCustomer("Maria", "529.982.247-25", "não-é-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	// e-mail é opcional
	_, err = NewCustomer("Maria", "529.982.247-25", "")
	assert.NoError(t, err)
}
