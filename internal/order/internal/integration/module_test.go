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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	mq "github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/lanchonete/fastfood/internal/customer"
	"github.com/lanchonete/fastfood/internal/order"
	"github.com/lanchonete/fastfood/internal/order/internal/errs"
	"github.com/lanchonete/fastfood/internal/order/internal/event"
	"github.com/lanchonete/fastfood/internal/order/internal/integration/startup"
	"github.com/lanchonete/fastfood/internal/order/internal/repository/dao"
	"github.com/lanchonete/fastfood/internal/order/internal/web"
	"github.com/lanchonete/fastfood/internal/payment"
	"github.com/lanchonete/fastfood/internal/product"
	"github.com/lanchonete/fastfood/internal/test"
	testioc "github.com/lanchonete/fastfood/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testStaffID = int64(77)

var testNow = time.UnixMilli(1_725_148_800_000)

// fakePaymentService devolve identificadores previsíveis e confirma ou
// recusa conforme o teste mandar.
type fakePaymentService struct {
	declined  atomic.Bool
	lastProof atomic.Value
}

func (f *fakePaymentService) GenerateIdentifier(_ context.Context, o payment.PaymentOrder) (payment.Identifier, error) {
	return payment.Identifier{
		QrCode:       "qr-" + o.SN,
		PreferenceID: "pref-" + o.SN,
	}, nil
}

func (f *fakePaymentService) ConfirmPayment(_ context.Context, orderSN string, proof string) (bool, error) {
	f.lastProof.Store(proof)
	return !f.declined.Load(), nil
}

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderModuleTestSuite))
}

type OrderModuleTestSuite struct {
	suite.Suite
	server     *egin.Component
	db         *egorm.Component
	mq         mq.MQ
	dao        dao.OrderDAO
	svc        order.Service
	paymentSvc *fakePaymentService

	// catálogo e cliente semeados para os pedidos dos testes
	xburgerID  int64
	sodaID     int64
	xsaladaID  int64
	batataID   int64
	customerID int64
}

func (s *OrderModuleTestSuite) SetupSuite() {
	s.paymentSvc = &fakePaymentService{}
	mod, err := startup.InitModule(s.paymentSvc, func() time.Time {
		return testNow
	})
	require.NoError(s.T(), err)
	s.svc = mod.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	mod.Hdl.PublicRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testStaffID,
		}))
	})
	mod.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server

	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewOrderGORMDAO(s.db)
	s.mq = testioc.InitMQ()

	s.seedCatalog()
}

func (s *OrderModuleTestSuite) seedCatalog() {
	t := s.T()
	ctx := context.Background()

	catalog := product.InitModule(s.db).Svc
	xburger, err := catalog.Create(ctx, "X-Burger", "pão, hambúrguer e queijo", product.CategoryLanche, 1595, "")
	require.NoError(t, err)
	s.xburgerID = xburger.ID
	soda, err := catalog.Create(ctx, "Refrigerante Lata", "350ml", product.CategoryBebida, 700, "")
	require.NoError(t, err)
	s.sodaID = soda.ID
	xsalada, err := catalog.Create(ctx, "X-Salada", "pão, hambúrguer, queijo e salada", product.CategoryLanche, 1495, "")
	require.NoError(t, err)
	s.xsaladaID = xsalada.ID
	batata, err := catalog.Create(ctx, "Batata Média", "porção média", product.CategoryAcompanhamento, 900, "")
	require.NoError(t, err)
	s.batataID = batata.ID

	c, err := customer.InitModule(s.db).Svc.Register(ctx, "João da Silva", "52998224725", "joao@example.com")
	require.NoError(t, err)
	s.customerID = c.ID
}

func (s *OrderModuleTestSuite) TearDownSuite() {
	for _, table := range []string{"orders", "order_items", "products", "customers"} {
		err := s.db.Exec("DROP TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *OrderModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `orders`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `order_items`").Error
	require.NoError(s.T(), err)
}

func (s *OrderModuleTestSuite) newOrder(t *testing.T, customerID *int64) order.Order {
	t.Helper()
	o, err := s.svc.CreateOrder(context.Background(), customerID, []order.CartItem{
		{ProductID: s.xburgerID, Quantity: 2},
		{ProductID: s.sodaID, Quantity: 1},
	})
	require.NoError(t, err)
	return o
}

func (s *OrderModuleTestSuite) checkout(t *testing.T, sn string) web.CheckoutOrderResp {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost,
		"/order/checkout", iox.NewJSONReader(web.CheckoutOrderReq{OrderSN: sn}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.CheckoutOrderResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan().Data
}

func (s *OrderModuleTestSuite) TestHandler_CreateOrder() {
	t := s.T()

	req, err := http.NewRequest(http.MethodPost,
		"/order/create", iox.NewJSONReader(web.CreateOrderReq{
			RequestID: "requestID01",
			Items: []web.CartItem{
				{ProductID: s.xsaladaID, Quantity: 2},
				{ProductID: s.batataID, Quantity: 1},
			},
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.CreateOrderResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	got := recorder.MustScan().Data.Order
	assert.NotEmpty(t, got.SN)
	assert.Zero(t, got.CustomerID)
	assert.Equal(t, int64(3890), got.TotalPrice)
	assert.Equal(t, uint8(order.StatusPending), got.Status)
	assert.Equal(t, "Pending", got.StatusName)
	// nome e preço saem do catálogo, não da requisição
	require.Len(t, got.Items, 2)
	assert.Equal(t, "X-Salada", got.Items[0].ProductName)
	assert.Equal(t, int64(1495), got.Items[0].UnitPrice)

	// o pedido e os itens foram persistidos juntos
	po, err := s.dao.FindOrderBySN(context.Background(), got.SN)
	require.NoError(t, err)
	items, err := s.dao.FindOrderItemsByOrderID(context.Background(), po.Id)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.False(t, po.CustomerId.Valid)
}

func (s *OrderModuleTestSuite) TestHandler_CreateOrderFailed() {
	t := s.T()
	testCases := []struct {
		name     string
		req      web.CreateOrderReq
		wantResp test.Result[any]
	}{
		{
			name: "sem itens",
			req: web.CreateOrderReq{
				RequestID: "requestID02",
			},
			wantResp: test.Result[any]{
				Code: errs.InvalidOrderData.Code,
				Msg:  errs.InvalidOrderData.Msg,
			},
		},
		{
			name: "item com quantidade zero",
			req: web.CreateOrderReq{
				RequestID: "requestID03",
				Items: []web.CartItem{
					{ProductID: s.xburgerID, Quantity: 0},
				},
			},
			wantResp: test.Result[any]{
				Code: errs.InvalidOrderData.Code,
				Msg:  errs.InvalidOrderData.Msg,
			},
		},
		{
			name: "produto inexistente",
			req: web.CreateOrderReq{
				RequestID: "requestID04",
				Items: []web.CartItem{
					{ProductID: 999_999, Quantity: 1},
				},
			},
			wantResp: test.Result[any]{
				Code: errs.ProductNotFound.Code,
				Msg:  errs.ProductNotFound.Msg,
			},
		},
		{
			name: "cliente inexistente",
			req: web.CreateOrderReq{
				RequestID:  "requestID05",
				CustomerID: 999_999,
				Items: []web.CartItem{
					{ProductID: s.xburgerID, Quantity: 1},
				},
			},
			wantResp: test.Result[any]{
				Code: errs.CustomerNotFound.Code,
				Msg:  errs.CustomerNotFound.Msg,
			},
		},
		{
			name: "requestID repetido",
			req: web.CreateOrderReq{
				RequestID: "requestID03",
				Items: []web.CartItem{
					{ProductID: s.xburgerID, Quantity: 1},
				},
			},
			wantResp: test.Result[any]{
				Code: errs.DuplicatedOrderRequest.Code,
				Msg:  errs.DuplicatedOrderRequest.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/order/create", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 500, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *OrderModuleTestSuite) TestHandler_Checkout() {
	t := s.T()

	consumer, err := s.mq.Consumer("order_status_events", "integration-checkout")
	require.NoError(t, err)

	o := s.newOrder(t, nil)
	resp := s.checkout(t, o.SN)

	assert.Equal(t, o.SN, resp.OrderSN)
	assert.Equal(t, "qr-"+o.SN, resp.QrCode)
	assert.Equal(t, "pref-"+o.SN, resp.PreferenceID)
	assert.Equal(t, uint8(order.StatusAwaitingPayment), resp.Status)
	assert.Equal(t, "AwaitingPayment", resp.StatusName)
	assert.Equal(t, int64(3890), resp.TotalAmount)

	po, err := s.dao.FindOrderBySN(context.Background(), o.SN)
	require.NoError(t, err)
	assert.Equal(t, uint8(order.StatusAwaitingPayment), po.Status)
	assert.Equal(t, "qr-"+o.SN, po.QrCode.String)
	assert.Equal(t, "pref-"+o.SN, po.PreferenceId.String)

	evt := s.consumeOrderEvent(t, consumer, o.SN)
	assert.Equal(t, uint8(order.StatusPending), evt.FromStatus)
	assert.Equal(t, uint8(order.StatusAwaitingPayment), evt.ToStatus)
	assert.Equal(t, int64(3890), evt.TotalPrice)
}

func (s *OrderModuleTestSuite) consumeOrderEvent(t *testing.T, consumer mq.Consumer, orderSN string) event.OrderEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		msg, err := consumer.Consume(ctx)
		require.NoError(t, err)
		var evt event.OrderEvent
		require.NoError(t, json.Unmarshal(msg.Value, &evt))
		if evt.OrderSN == orderSN {
			return evt
		}
	}
}

func (s *OrderModuleTestSuite) TestHandler_CheckoutFailed() {
	t := s.T()

	o := s.newOrder(t, nil)
	s.checkout(t, o.SN)

	// segundo checkout do mesmo pedido é rejeitado sem chamar o gateway
	req, err := http.NewRequest(http.MethodPost,
		"/order/checkout", iox.NewJSONReader(web.CheckoutOrderReq{OrderSN: o.SN}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[any]{
		Code: errs.InvalidCheckoutState.Code,
		Msg:  errs.InvalidCheckoutState.Msg,
	}, recorder.MustScan())

	req, err = http.NewRequest(http.MethodPost,
		"/order/checkout", iox.NewJSONReader(web.CheckoutOrderReq{OrderSN: "SN-inexistente"}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[any]{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}, recorder.MustScan())
}

func (s *OrderModuleTestSuite) TestHandler_ConfirmPayment() {
	t := s.T()

	o := s.newOrder(t, nil)
	s.checkout(t, o.SN)

	req, err := http.NewRequest(http.MethodPost,
		"/order/payment/confirm", iox.NewJSONReader(web.ConfirmPaymentReq{
			OrderSN: o.SN,
			QrCode:  "qr-" + o.SN,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ConfirmPaymentResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	got := recorder.MustScan().Data
	assert.True(t, got.PaymentConfirmed)
	assert.Equal(t, uint8(order.StatusPaid), got.Status)

	po, err := s.dao.FindOrderBySN(context.Background(), o.SN)
	require.NoError(t, err)
	assert.Equal(t, uint8(order.StatusPaid), po.Status)
}

func (s *OrderModuleTestSuite) TestHandler_ConfirmPaymentDeclined() {
	t := s.T()

	o := s.newOrder(t, nil)
	s.checkout(t, o.SN)

	s.paymentSvc.declined.Store(true)
	defer s.paymentSvc.declined.Store(false)

	req, err := http.NewRequest(http.MethodPost,
		"/order/payment/confirm", iox.NewJSONReader(web.ConfirmPaymentReq{
			OrderSN: o.SN,
			QrCode:  "qr-" + o.SN,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ConfirmPaymentResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	res := recorder.MustScan()
	assert.Equal(t, errs.PaymentNotConfirmed.Code, res.Code)
	assert.False(t, res.Data.PaymentConfirmed)

	// recusa não é erro: o pedido continua aguardando pagamento
	po, err := s.dao.FindOrderBySN(context.Background(), o.SN)
	require.NoError(t, err)
	assert.Equal(t, uint8(order.StatusAwaitingPayment), po.Status)
}

func (s *OrderModuleTestSuite) TestHandler_MercadoPagoWebhook() {
	t := s.T()

	o := s.newOrder(t, nil)
	s.checkout(t, o.SN)

	var hook web.MercadoPagoWebhookReq
	hook.Type = "payment"
	hook.Action = "payment.updated"
	hook.Data.ID = "12345678"
	hook.Data.ExternalReference = o.SN

	req, err := http.NewRequest(http.MethodPost,
		"/order/webhook/mercadopago", iox.NewJSONReader(hook))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	po, err := s.dao.FindOrderBySN(context.Background(), o.SN)
	require.NoError(t, err)
	assert.Equal(t, uint8(order.StatusPaid), po.Status)

	// a notificação usa o ID do pagamento como prova
	assert.Equal(t, "12345678", s.paymentSvc.lastProof.Load())

	// reentrega da mesma notificação continua respondendo 200
	req, err = http.NewRequest(http.MethodPost,
		"/order/webhook/mercadopago", iox.NewJSONReader(hook))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
}

func (s *OrderModuleTestSuite) TestHandler_RetrieveOrderStatus() {
	t := s.T()

	o := s.newOrder(t, &s.customerID)

	req, err := http.NewRequest(http.MethodPost,
		"/order/status", iox.NewJSONReader(web.RetrieveOrderStatusReq{OrderSN: o.SN}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.RetrieveOrderStatusResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	got := recorder.MustScan().Data
	assert.Equal(t, o.SN, got.OrderSN)
	assert.Equal(t, uint8(order.StatusPending), got.Status)
	assert.Equal(t, int64(3890), got.TotalPrice)
	assert.False(t, got.IsAnonymous)
}

func (s *OrderModuleTestSuite) TestAdminHandler_UpdateStatus() {
	t := s.T()

	o := s.newOrder(t, nil)
	s.checkout(t, o.SN)
	_, err := s.svc.ConfirmPayment(context.Background(), o.SN, "", "qr-"+o.SN)
	require.NoError(t, err)

	// esteira da cozinha: Paid -> Processing -> Ready -> Completed
	for _, status := range []string{"Processing", "Ready", "Completed"} {
		req, err := http.NewRequest(http.MethodPost,
			"/order/status/update", iox.NewJSONReader(web.UpdateOrderStatusReq{
				OrderSN: o.SN,
				Status:  status,
			}))
		req.Header.Set("content-type", "application/json")
		require.NoError(t, err)
		recorder := test.NewJSONResponseRecorder[web.UpdateOrderStatusResp]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(t, 200, recorder.Code)
		assert.Equal(t, status, recorder.MustScan().Data.Order.StatusName)
	}

	// pedido concluído é terminal
	req, err := http.NewRequest(http.MethodPost,
		"/order/status/update", iox.NewJSONReader(web.UpdateOrderStatusReq{
			OrderSN: o.SN,
			Status:  "Cancelled",
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.InvalidStatusChange.Code, recorder.MustScan().Code)
}

func (s *OrderModuleTestSuite) TestAdminHandler_List() {
	t := s.T()

	first := s.newOrder(t, nil)
	second := s.newOrder(t, nil)
	s.checkout(t, second.SN)

	req, err := http.NewRequest(http.MethodPost,
		"/order/list", iox.NewJSONReader(web.ListOrdersReq{
			Limit:  10,
			Status: "AwaitingPayment",
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	got := recorder.MustScan().Data
	assert.Equal(t, int64(1), got.Total)
	require.Len(t, got.Orders, 1)
	assert.Equal(t, second.SN, got.Orders[0].SN)

	// sem filtro lista todos
	req, err = http.NewRequest(http.MethodPost,
		"/order/list", iox.NewJSONReader(web.ListOrdersReq{Limit: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	got = recorder.MustScan().Data
	assert.Equal(t, int64(2), got.Total)
	assert.Equal(t, []string{second.SN, first.SN}, []string{got.Orders[0].SN, got.Orders[1].SN})
}
