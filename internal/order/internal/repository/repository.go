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

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/lanchonete/fastfood/internal/order/internal/domain"
	"github.com/lanchonete/fastfood/internal/order/internal/repository/dao"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	// UpdateOrder persiste o pedido condicionado ao status que foi lido,
	// fromStatus. A troca de status é a fronteira de concorrência por pedido.
	UpdateOrder(ctx context.Context, order domain.Order, fromStatus domain.OrderStatus) error
	// FindOrderBySN devolve o pedido com seus itens.
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	ListOrders(ctx context.Context, offset, limit int, status domain.OrderStatus) ([]domain.Order, error)
	TotalOrders(ctx context.Context, status domain.OrderStatus) (int64, error)
	FindExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, error)
	CancelOrders(ctx context.Context, ids []int64, utime int64) error
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	oid, err := o.d.CreateOrder(ctx, o.toOrderEntity(order), o.toOrderItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) UpdateOrder(ctx context.Context, order domain.Order, fromStatus domain.OrderStatus) error {
	return o.d.UpdateOrder(ctx, o.toOrderEntity(order), fromStatus.ToUint8())
}

func (o *orderRepository) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindOrderBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := o.d.FindOrderItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("falha ao buscar itens do pedido %s: %w", sn, err)
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) ListOrders(ctx context.Context, offset, limit int, status domain.OrderStatus) ([]domain.Order, error) {
	os, err := o.d.List(ctx, offset, limit, status.ToUint8())
	if err != nil {
		return nil, err
	}
	res := make([]domain.Order, 0, len(os))
	for _, src := range os {
		items, er := o.d.FindOrderItemsByOrderID(ctx, src.Id)
		if er != nil {
			return nil, fmt.Errorf("falha ao buscar itens do pedido %s: %w", src.SN, er)
		}
		res = append(res, o.toOrderDomain(src, items))
	}
	return res, nil
}

func (o *orderRepository) TotalOrders(ctx context.Context, status domain.OrderStatus) (int64, error) {
	return o.d.Count(ctx, status.ToUint8())
}

func (o *orderRepository) FindExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, error) {
	os, err := o.d.FindExpiredOrders(ctx, offset, limit, ctime)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toOrderDomain(src, nil)
	}), nil
}

func (o *orderRepository) CancelOrders(ctx context.Context, ids []int64, utime int64) error {
	return o.d.CancelOrders(ctx, ids, utime)
}

func (o *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	var customerID sql.NullInt64
	if order.CustomerID != nil {
		customerID = sql.NullInt64{Int64: *order.CustomerID, Valid: true}
	}
	return dao.Order{
		Id:           order.ID,
		SN:           order.SN,
		CustomerId:   customerID,
		TotalPrice:   order.TotalPrice,
		Status:       order.Status.ToUint8(),
		QrCode:       sql.NullString{String: order.QrCode, Valid: order.QrCode != ""},
		PreferenceId: sql.NullString{String: order.PreferenceID, Valid: order.PreferenceID != ""},
		Ctime:        order.Ctime,
		Utime:        order.Utime,
	}
}

func (o *orderRepository) toOrderItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			ProductId:   src.ProductID,
			ProductName: src.ProductName,
			UnitPrice:   src.UnitPrice,
			Quantity:    src.Quantity,
		}
	})
}

func (o *orderRepository) toOrderDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	var customerID *int64
	if order.CustomerId.Valid {
		id := order.CustomerId.Int64
		customerID = &id
	}
	return domain.Order{
		ID:           order.Id,
		SN:           order.SN,
		CustomerID:   customerID,
		TotalPrice:   order.TotalPrice,
		Status:       domain.OrderStatus(order.Status),
		QrCode:       order.QrCode.String,
		PreferenceID: order.PreferenceId.String,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				ProductID:   src.ProductId,
				ProductName: src.ProductName,
				UnitPrice:   src.UnitPrice,
				Quantity:    src.Quantity,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
