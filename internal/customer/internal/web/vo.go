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

type RegisterCustomerReq struct {
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Email string `json:"email,omitempty"`
}

// IdentifyCustomerReq identifica o cliente no totem pelo CPF.
type IdentifyCustomerReq struct {
	CPF string `json:"cpf"`
}

type UpdateProfileReq struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Email string `json:"email,omitempty"`
}

type CustomerResp struct {
	Customer Customer `json:"customer"`
}

type ListCustomersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListCustomersResp struct {
	Total     int64      `json:"total"`
	Customers []Customer `json:"customers"`
}

type DeleteCustomerReq struct {
	ID int64 `json:"id"`
}
