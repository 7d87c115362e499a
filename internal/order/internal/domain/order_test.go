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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.UnixMilli(1735689600000)

func testItem(t *testing.T, productID int64, price int64, qty int64) OrderItem {
	t.Helper()
	it, err := NewOrderItem(productID, "X-Burger", price, qty)
	require.NoError(t, err)
	return it
}

func TestNewOrder_TotalPrice(t *testing.T) {
	// 2 x 15,95 + 1 x 14,00 = 45,90
	i1, err := NewOrderItem(1, "X-Burger", 1595, 2)
	require.NoError(t, err)
	i2, err := NewOrderItem(2, "Batata frita", 1400, 1)
	require.NoError(t, err)

	o, err := NewOrder(nil, []OrderItem{i1, i2}, testNow)
	require.NoError(t, err)

	assert.Equal(t, int64(4590), o.TotalPrice)
	assert.Equal(t, StatusPending, o.Status)
	assert.True(t, o.IsAnonymous())
	assert.Equal(t, testNow.UnixMilli(), o.Ctime)
}

func TestNewOrder_SemItens(t *testing.T) {
	_, err := NewOrder(nil, nil, testNow)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestNewOrderItem_Validacao(t *testing.T) {
	testCases := []struct {
		name      string
		productID int64
		prodName  string
		unitPrice int64
		quantity  int64
		wantErr   error
	}{
		{name: "produto obrigatório", productID: 0, prodName: "X", unitPrice: 100, quantity: 1, wantErr: ErrInvalidProductID},
		{name: "nome obrigatório", productID: 1, prodName: "   ", unitPrice: 100, quantity: 1, wantErr: ErrEmptyProductName},
		{name: "preço positivo", productID: 1, prodName: "X", unitPrice: 0, quantity: 1, wantErr: ErrInvalidUnitPrice},
		{name: "quantidade positiva", productID: 1, prodName: "X", unitPrice: 100, quantity: 0, wantErr: ErrInvalidQuantity},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOrderItem(tc.productID, tc.prodName, tc.unitPrice, tc.quantity)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestOrderItem_IgualdadePorValor(t *testing.T) {
	a, err := NewOrderItem(7, "Refrigerante", 800, 2)
	require.NoError(t, err)
	b, err := NewOrderItem(7, "Refrigerante", 800, 2)
	require.NoError(t, err)
	assert.True(t, a == b)

	c, err := a.WithQuantity(3)
	require.NoError(t, err)
	assert.False(t, a == c)
	// o original não muda
	assert.Equal(t, int64(2), a.Quantity)
	assert.Equal(t, int64(1600), a.SubTotal())
	assert.Equal(t, int64(2400), c.SubTotal())
}

// Cada transição fora da tabela precisa falhar sem alterar o status; cada
// transição da tabela precisa mover o pedido.
func TestOrder_MaquinaDeEstados(t *testing.T) {
	all := []OrderStatus{
		StatusPending, StatusAwaitingPayment, StatusPaid,
		StatusProcessing, StatusReady, StatusCompleted, StatusCancelled,
	}
	allowed := map[OrderStatus][]OrderStatus{
		StatusPending:         {StatusAwaitingPayment, StatusPaid, StatusCancelled},
		StatusAwaitingPayment: {StatusPaid, StatusCancelled},
		StatusPaid:            {StatusProcessing},
		StatusProcessing:      {StatusReady, StatusCancelled, StatusPending},
		StatusReady:           {StatusCompleted},
		StatusCompleted:       {},
		StatusCancelled:       {},
	}
	isAllowed := func(from, to OrderStatus) bool {
		if from == to {
			return true
		}
		for _, st := range allowed[from] {
			if st == to {
				return true
			}
		}
		return false
	}

	for _, from := range all {
		for _, to := range all {
			o := Order{Status: from}
			err := o.UpdateStatus(to, testNow)
			if isAllowed(from, to) {
				assert.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, o.Status)
			} else {
				var ite *InvalidTransitionError
				require.ErrorAs(t, err, &ite, "%s -> %s", from, to)
				assert.Equal(t, from, ite.From)
				assert.Equal(t, to, ite.To)
				assert.ErrorIs(t, err, ErrStatusNotTransition)
				// pedido intocado
				assert.Equal(t, from, o.Status)
			}
		}
	}
}

func TestOrder_TransicaoReadyParaPending(t *testing.T) {
	o := Order{Status: StatusReady}
	err := o.UpdateStatus(StatusPending, testNow)
	assert.ErrorIs(t, err, ErrStatusNotTransition)
	assert.Equal(t, StatusReady, o.Status)
}

func TestOrder_ItensApenasPendente(t *testing.T) {
	o, err := NewOrder(nil, []OrderItem{testItem(t, 1, 1000, 1)}, testNow)
	require.NoError(t, err)

	require.NoError(t, o.UpdateStatus(StatusAwaitingPayment, testNow))

	err = o.AddItem(testItem(t, 2, 500, 1), testNow)
	assert.ErrorIs(t, err, ErrOrderNotPending)
	assert.Len(t, o.Items, 1)
	assert.Equal(t, int64(1000), o.TotalPrice)

	_, err = o.RemoveItem(1, testNow)
	assert.ErrorIs(t, err, ErrOrderNotPending)
	assert.Len(t, o.Items, 1)
}

func TestOrder_TotalRecalculado(t *testing.T) {
	o, err := NewOrder(nil, []OrderItem{testItem(t, 1, 1000, 2)}, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), o.TotalPrice)

	require.NoError(t, o.AddItem(testItem(t, 2, 350, 3), testNow))
	assert.Equal(t, int64(3050), o.TotalPrice)

	removed, err := o.RemoveItem(1, testNow)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, int64(1050), o.TotalPrice)

	removed, err = o.RemoveItem(999, testNow)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, int64(1050), o.TotalPrice)
}

func TestOrder_SettersDePagamento(t *testing.T) {
	o, err := NewOrder(nil, []OrderItem{testItem(t, 1, 1000, 1)}, testNow)
	require.NoError(t, err)

	assert.ErrorIs(t, o.SetQrCode("  ", testNow), ErrEmptyQrCode)
	assert.ErrorIs(t, o.SetPreferenceID("", testNow), ErrEmptyPreferenceID)

	later := testNow.Add(time.Minute)
	require.NoError(t, o.SetQrCode("https://mp.com/qr/abc", later))
	require.NoError(t, o.SetPreferenceID("PREF-123", later))
	assert.Equal(t, "https://mp.com/qr/abc", o.QrCode)
	assert.Equal(t, "PREF-123", o.PreferenceID)
	assert.Equal(t, later.UnixMilli(), o.Utime)
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("awaitingpayment")
	require.NoError(t, err)
	assert.Equal(t, StatusAwaitingPayment, st)

	_, err = ParseStatus("desconhecido")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestStatusDescription(t *testing.T) {
	assert.Equal(t, "Aguardando confirmação do pagamento", StatusAwaitingPayment.Description())
	assert.Equal(t, "Pedido pronto para retirada", StatusReady.Description())
	// Cancelled e valores desconhecidos caem no texto genérico
	assert.Equal(t, "Status do pedido", StatusCancelled.Description())
	assert.Equal(t, "Status do pedido", OrderStatus(42).Description())
}
