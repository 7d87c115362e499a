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
	"errors"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrCPFDuplicado CPF já cadastrado
	ErrCPFDuplicado = errors.New("cliente já cadastrado com este CPF")
)

type CustomerDAO interface {
	Insert(ctx context.Context, c Customer) (int64, error)
	UpdateNonZeroFields(ctx context.Context, c Customer) error
	// Delete remove o cadastro de vez. Pedidos antigos não quebram: o
	// customer_id do pedido é uma referência sem FK.
	Delete(ctx context.Context, id int64) error
	FindByCPF(ctx context.Context, cpf string) (Customer, error)
	FindById(ctx context.Context, id int64) (Customer, error)
	List(ctx context.Context, offset, limit int) ([]Customer, error)
	Count(ctx context.Context) (int64, error)
}

type GORMCustomerDAO struct {
	db *egorm.Component
}

func NewGORMCustomerDAO(db *egorm.Component) CustomerDAO {
	return &GORMCustomerDAO{db: db}
}

func (cd *GORMCustomerDAO) Insert(ctx context.Context, c Customer) (int64, error) {
	err := cd.db.WithContext(ctx).Create(&c).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrCPFDuplicado
		}
	}
	return c.Id, err
}

func (cd *GORMCustomerDAO) UpdateNonZeroFields(ctx context.Context, c Customer) error {
	return cd.db.WithContext(ctx).Updates(&c).Error
}

func (cd *GORMCustomerDAO) Delete(ctx context.Context, id int64) error {
	res := cd.db.WithContext(ctx).Where("id = ?", id).Delete(&Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (cd *GORMCustomerDAO) List(ctx context.Context, offset, limit int) ([]Customer, error) {
	var res []Customer
	err := cd.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (cd *GORMCustomerDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := cd.db.WithContext(ctx).Model(&Customer{}).Count(&count).Error
	return count, err
}

func (cd *GORMCustomerDAO) FindByCPF(ctx context.Context, cpf string) (Customer, error) {
	var c Customer
	err := cd.db.WithContext(ctx).First(&c, "cpf = ?", cpf).Error
	return c, err
}

func (cd *GORMCustomerDAO) FindById(ctx context.Context, id int64) (Customer, error) {
	var c Customer
	err := cd.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Customer{})
}

type Customer struct {
	Id   int64  `gorm:"primaryKey,autoIncrement"`
	Name string `gorm:"type:varchar(256);not null;comment:Nome do cliente"`
	// CPF normalizado, só dígitos
	CPF   string `gorm:"column:cpf;type:varchar(11);not null;uniqueIndex:uniq_customer_cpf;comment:CPF do cliente"`
	Email string `gorm:"type:varchar(256);comment:E-mail para notificações"`
	Ctime int64
	Utime int64
}
