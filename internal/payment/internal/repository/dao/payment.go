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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type PaymentDAO interface {
	Insert(ctx context.Context, pmt Payment) (int64, error)
	// FindByOrderSN devolve o registro da tentativa de checkout corrente do
	// pedido (a mais recente).
	FindByOrderSN(ctx context.Context, orderSN string) (Payment, error)
	UpdateStatusByOrderSN(ctx context.Context, orderSN string, status uint8, utime int64) error
}

func NewPaymentGORMDAO(db *egorm.Component) PaymentDAO {
	return &gormPaymentDAO{db: db}
}

type gormPaymentDAO struct {
	db *egorm.Component
}

func (g *gormPaymentDAO) Insert(ctx context.Context, pmt Payment) (int64, error) {
	err := g.db.WithContext(ctx).Create(&pmt).Error
	return pmt.Id, err
}

func (g *gormPaymentDAO) FindByOrderSN(ctx context.Context, orderSN string) (Payment, error) {
	var pmt Payment
	err := g.db.WithContext(ctx).
		Where("order_sn = ?", orderSN).
		Order("id DESC").
		First(&pmt).Error
	return pmt, err
}

func (g *gormPaymentDAO) UpdateStatusByOrderSN(ctx context.Context, orderSN string, status uint8, utime int64) error {
	return g.db.WithContext(ctx).
		Model(&Payment{}).
		Where("order_sn = ?", orderSN).
		Updates(map[string]any{
			"status": status,
			"utime":  utime,
		}).Error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Payment{})
}

type Payment struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:ID auto incremental do pagamento"`
	SN           string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_payment_sn;comment:número de série do pagamento"`
	OrderId      int64  `gorm:"not null;index:idx_order_id;comment:ID do pedido"`
	OrderSn      string `gorm:"type:varchar(255);not null;index:idx_order_sn;comment:número de série do pedido"`
	TotalAmount  int64  `gorm:"not null;comment:valor em centavos, 999 representa R$9,99"`
	QrCode       string `gorm:"type:varchar(512);not null;comment:QR Code emitido"`
	PreferenceId string `gorm:"type:varchar(255);not null;comment:ID da preferência no gateway"`
	Status       uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:1=emitido 2=confirmado 3=recusado"`
	Ctime        int64
	Utime        int64
}
