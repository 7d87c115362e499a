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
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCategory = errors.New("categoria de produto inválida")
	ErrEmptyName       = errors.New("o nome do produto é obrigatório")
	ErrInvalidPrice    = errors.New("o preço deve ser maior que zero")
)

// Category é fixa no cardápio da lanchonete.
type Category uint8

const (
	CategoryLanche Category = iota + 1
	CategoryAcompanhamento
	CategoryBebida
	CategorySobremesa
)

func (c Category) ToUint8() uint8 {
	return uint8(c)
}

func (c Category) String() string {
	switch c {
	case CategoryLanche:
		return "Lanche"
	case CategoryAcompanhamento:
		return "Acompanhamento"
	case CategoryBebida:
		return "Bebida"
	case CategorySobremesa:
		return "Sobremesa"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

func ParseCategory(s string) (Category, error) {
	all := []Category{CategoryLanche, CategoryAcompanhamento, CategoryBebida, CategorySobremesa}
	for _, c := range all {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidCategory, s)
}

type ProductStatus uint8

const (
	StatusOffShelf ProductStatus = iota + 1
	StatusOnShelf
)

func (s ProductStatus) ToUint8() uint8 {
	return uint8(s)
}

type Product struct {
	ID          int64
	Name        string
	Description string
	Category    Category
	Price       int64 // em centavos
	Image       string
	Status      ProductStatus
	Ctime       int64
	Utime       int64
}

func NewProduct(name, description string, category Category, price int64, image string) (Product, error) {
	if strings.TrimSpace(name) == "" {
		return Product{}, ErrEmptyName
	}
	if category < CategoryLanche || category > CategorySobremesa {
		return Product{}, ErrInvalidCategory
	}
	if price <= 0 {
		return Product{}, ErrInvalidPrice
	}
	return Product{
		Name:        strings.TrimSpace(name),
		Description: description,
		Category:    category,
		Price:       price,
		Image:       image,
		Status:      StatusOnShelf,
	}, nil
}
