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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()
	c, err := ParseCategory("lanche")
	require.NoError(t, err)
	assert.Equal(t, CategoryLanche, c)

	c, err = ParseCategory("Sobremesa")
	require.NoError(t, err)
	assert.Equal(t, CategorySobremesa, c)

	_, err = ParseCategory("Pizza")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestNewProduct(t *testing.T) {
	t.Parallel()
	p, err := NewProduct("  X-Burger ", "Hambúrguer com queijo", CategoryLanche, 1595, "")
	require.NoError(t, err)
	assert.Equal(t, "X-Burger", p.Name)
	assert.Equal(t, StatusOnShelf, p.Status)

	_, err = NewProduct(" ", "", CategoryBebida, 700, "")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct("Suco", "", CategoryBebida, -1, "")
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewProduct("Suco", "", Category(0), 700, "")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}
