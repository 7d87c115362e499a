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

package web

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Price       int64  `json:"price"` // centavos
	Image       string `json:"image,omitempty"`
}

// MenuReq lista o cardápio de uma categoria no totem.
type MenuReq struct {
	Category string `json:"category"`
}

type MenuResp struct {
	Products []Product `json:"products"`
}

type SaveProductReq struct {
	ID          int64  `json:"id,omitempty"` // zero cria, maior que zero atualiza
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Image       string `json:"image,omitempty"`
}

type SaveProductResp struct {
	Product Product `json:"product"`
}

type DeleteProductReq struct {
	ID int64 `json:"id"`
}

type ListProductsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListProductsResp struct {
	Total    int64     `json:"total"`
	Products []Product `json:"products"`
}
