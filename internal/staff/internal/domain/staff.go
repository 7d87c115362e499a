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

// Staff é quem opera o painel administrativo: cozinha e gerência.
type Staff struct {
	ID       int64
	Username string
	// Password é o hash bcrypt, nunca a senha em claro.
	Password string
	Name     string
	Role     Role
	Ctime    int64
	Utime    int64
}

type Role uint8

const (
	RoleKitchen Role = iota + 1
	RoleManager
)

func (r Role) ToUint8() uint8 {
	return uint8(r)
}

func (r Role) String() string {
	switch r {
	case RoleKitchen:
		return "kitchen"
	case RoleManager:
		return "manager"
	default:
		return "unknown"
	}
}
