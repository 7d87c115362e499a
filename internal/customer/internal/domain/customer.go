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
	"net/mail"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidCPF   = errors.New("CPF inválido")
	ErrInvalidEmail = errors.New("e-mail inválido")
	ErrEmptyName    = errors.New("o nome é obrigatório")
	ErrInvalidName  = errors.New("o nome deve ter entre 3 e 100 caracteres")
)

// Customer identifica o cliente pelo CPF. A identificação é opcional no
// fluxo do totem; quem não se identifica faz pedido anônimo.
type Customer struct {
	ID    int64
	Name  string
	CPF   string // só dígitos, 11 caracteres
	Email string
	Ctime int64
	Utime int64
}

func NewCustomer(name, cpf, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrEmptyName
	}
	if n := utf8.RuneCountInString(name); n < 3 || n > 100 {
		return Customer{}, ErrInvalidName
	}
	normalized, err := NormalizeCPF(cpf)
	if err != nil {
		return Customer{}, err
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return Customer{}, ErrInvalidEmail
		}
	}
	return Customer{
		Name:  name,
		CPF:   normalized,
		Email: email,
	}, nil
}

// NormalizeCPF remove a máscara (pontos e hífen) e valida os dois dígitos
// verificadores. Devolve só os 11 dígitos.
func NormalizeCPF(cpf string) (string, error) {
	var digits []byte
	for _, r := range cpf {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, byte(r))
		case r == '.' || r == '-' || r == ' ':
		default:
			return "", ErrInvalidCPF
		}
	}
	if len(digits) != 11 {
		return "", ErrInvalidCPF
	}
	// CPFs com todos os dígitos iguais passam no cálculo mas são inválidos
	allEqual := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return "", ErrInvalidCPF
	}
	if digits[9] != checkDigit(digits[:9], 10) || digits[10] != checkDigit(digits[:10], 11) {
		return "", ErrInvalidCPF
	}
	return string(digits), nil
}

func checkDigit(digits []byte, weight int) byte {
	sum := 0
	for _, d := range digits {
		sum += int(d-'0') * weight
		weight--
	}
	rest := sum % 11
	if rest < 2 {
		return '0'
	}
	return byte('0' + 11 - rest)
}
