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

package dao

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrConcurrentUpdate indica que o status mudou entre a leitura e a
	// escrita. O update é condicionado ao status lido, um CAS barato por
	// linha de pedido.
	ErrConcurrentUpdate = errors.New("o pedido foi alterado por outra requisição")
)

type OrderDAO interface {
	CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error)
	// UpdateOrder grava as colunas mutáveis do pedido desde que o status
	// persistido ainda seja fromStatus.
	UpdateOrder(ctx context.Context, o Order, fromStatus uint8) error
	FindOrderBySN(ctx context.Context, sn string) (Order, error)
	FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error)
	List(ctx context.Context, offset, limit int, status uint8) ([]Order, error)
	Count(ctx context.Context, status uint8) (int64, error)
	FindExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]Order, error)
	CancelOrders(ctx context.Context, ids []int64, utime int64) error
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &gormOrderDAO{db: db}
}

type gormOrderDAO struct {
	db *egorm.Component
}

func (g *gormOrderDAO) CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime = o.Ctime
			items[i].Utime = o.Utime
		}
		return tx.Create(&items).Error
	})
	return o.Id, err
}

func (g *gormOrderDAO) UpdateOrder(ctx context.Context, o Order, fromStatus uint8) error {
	res := g.db.WithContext(ctx).
		Model(&Order{}).
		Where("id = ? AND status = ?", o.Id, fromStatus).
		Updates(map[string]any{
			"status":        o.Status,
			"qr_code":       o.QrCode,
			"preference_id": o.PreferenceId,
			"total_price":   o.TotalPrice,
			"utime":         o.Utime,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConcurrentUpdate
	}
	return nil
}

func (g *gormOrderDAO) FindOrderBySN(ctx context.Context, sn string) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).First(&o, "sn = ?", sn).Error
	return o, err
}

func (g *gormOrderDAO) FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error) {
	var items []OrderItem
	err := g.db.WithContext(ctx).Order("id ASC").Find(&items, "order_id = ?", oid).Error
	return items, err
}

func (g *gormOrderDAO) List(ctx context.Context, offset, limit int, status uint8) ([]Order, error) {
	var os []Order
	query := g.db.WithContext(ctx).Offset(offset).Limit(limit).Order("id DESC")
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&os).Error
	return os, err
}

func (g *gormOrderDAO) Count(ctx context.Context, status uint8) (int64, error) {
	var total int64
	query := g.db.WithContext(ctx).Model(&Order{})
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&total).Error
	return total, err
}

func (g *gormOrderDAO) FindExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]Order, error) {
	var os []Order
	err := g.db.WithContext(ctx).
		Where("status IN ? AND ctime < ?", expirableStatuses, ctime).
		Offset(offset).Limit(limit).Order("id ASC").
		Find(&os).Error
	return os, err
}

func (g *gormOrderDAO) CancelOrders(ctx context.Context, ids []int64, utime int64) error {
	if len(ids) == 0 {
		return nil
	}
	return g.db.WithContext(ctx).
		Model(&Order{}).
		Where("id IN ? AND status IN ?", ids, expirableStatuses).
		Updates(map[string]any{
			"status": statusCancelled,
			"utime":  utime,
		}).Error
}

// statusCancelled replica domain.StatusCancelled; o dao não importa o domain.
const statusCancelled = uint8(7)

// Pendente e aguardando pagamento são os únicos status canceláveis por tempo.
var expirableStatuses = []uint8{1, 2}

type Order struct {
	Id           int64          `gorm:"primaryKey;autoIncrement;comment:ID auto incremental do pedido"`
	SN           string         `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:número de série do pedido"`
	CustomerId   sql.NullInt64  `gorm:"index:idx_customer_id;comment:ID do cliente, nulo para pedido anônimo"`
	TotalPrice   int64          `gorm:"not null;comment:valor total em centavos, 999 representa R$9,99"`
	Status       uint8          `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status;comment:1=Pending 2=AwaitingPayment 3=Paid 4=Processing 5=Ready 6=Completed 7=Cancelled"`
	QrCode       sql.NullString `gorm:"type:varchar(512);comment:QR Code emitido no checkout"`
	PreferenceId sql.NullString `gorm:"type:varchar(255);comment:ID da preferência no Mercado Pago"`
	Ctime        int64          `gorm:"index:idx_ctime"`
	Utime        int64
}

type OrderItem struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:ID auto incremental do item"`
	OrderId     int64  `gorm:"not null;index:idx_order_id;comment:ID do pedido"`
	ProductId   int64  `gorm:"not null;comment:ID do produto"`
	ProductName string `gorm:"type:varchar(255);not null;comment:nome do produto no momento do pedido"`
	UnitPrice   int64  `gorm:"not null;comment:preço unitário em centavos no momento do pedido"`
	Quantity    int64  `gorm:"not null;comment:quantidade"`
	Ctime       int64
	Utime       int64
}
