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
	"github.com/lanchonete/fastfood/internal/product/internal/domain"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ProductDAO interface {
	Create(ctx context.Context, p Product) (int64, error)
	Update(ctx context.Context, p Product) error
	// Delete tira o produto de linha. O registro fica para os pedidos
	// históricos que o referenciam.
	Delete(ctx context.Context, id int64, utime int64) error
	FindById(ctx context.Context, id int64) (Product, error)
	FindByCategory(ctx context.Context, category uint8) ([]Product, error)
	List(ctx context.Context, offset, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) Create(ctx context.Context, p Product) (int64, error) {
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *ProductGORMDAO) Update(ctx context.Context, p Product) error {
	return d.db.WithContext(ctx).
		Model(&Product{}).
		Where("id = ?", p.Id).
		Updates(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"category":    p.Category,
			"price":       p.Price,
			"image":       p.Image,
			"status":      p.Status,
			"utime":       p.Utime,
		}).Error
}

func (d *ProductGORMDAO) Delete(ctx context.Context, id int64, utime int64) error {
	return d.db.WithContext(ctx).
		Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": domain.StatusOffShelf.ToUint8(),
			"utime":  utime,
		}).Error
}

func (d *ProductGORMDAO) FindById(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindByCategory(ctx context.Context, category uint8) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Where("category = ? AND status = ?", category, domain.StatusOnShelf.ToUint8()).
		Order("name ASC").
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) List(ctx context.Context, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Product{}).Count(&count).Error
	return count, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Product{})
}

type Product struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:ID do produto"`
	Name        string `gorm:"type:varchar(255);not null;comment:Nome do produto"`
	Description string `gorm:"not null;comment:Descrição exibida no totem"`
	Category    uint8  `gorm:"type:tinyint unsigned;not null;index:idx_category;comment:Categoria 1=Lanche 2=Acompanhamento 3=Bebida 4=Sobremesa"`
	Price       int64  `gorm:"not null;comment:Preço em centavos, 999 representa R$9,99"`
	Image       string `gorm:"type:varchar(512);comment:Imagem do produto, caminho absoluto no CDN"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:2;comment:Status 1=fora de linha 2=em linha"`
	Ctime       int64
	Utime       int64
}
