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
	// ErrUsernameDuplicado usuário já cadastrado
	ErrUsernameDuplicado = errors.New("já existe um operador com este usuário")
)

type StaffDAO interface {
	Insert(ctx context.Context, s Staff) (int64, error)
	FindByUsername(ctx context.Context, username string) (Staff, error)
	FindById(ctx context.Context, id int64) (Staff, error)
}

type GORMStaffDAO struct {
	db *egorm.Component
}

func NewGORMStaffDAO(db *egorm.Component) StaffDAO {
	return &GORMStaffDAO{db: db}
}

func (sd *GORMStaffDAO) Insert(ctx context.Context, s Staff) (int64, error) {
	err := sd.db.WithContext(ctx).Create(&s).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUsernameDuplicado
		}
	}
	return s.Id, err
}

func (sd *GORMStaffDAO) FindByUsername(ctx context.Context, username string) (Staff, error) {
	var s Staff
	err := sd.db.WithContext(ctx).First(&s, "username = ?", username).Error
	return s, err
}

func (sd *GORMStaffDAO) FindById(ctx context.Context, id int64) (Staff, error) {
	var s Staff
	err := sd.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return s, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Staff{})
}

type Staff struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Username string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_staff_username;comment:Usuário de login"`
	Password string `gorm:"type:varchar(256);not null;comment:Hash bcrypt da senha"`
	Name     string `gorm:"type:varchar(256);not null;comment:Nome do operador"`
	Role     uint8  `gorm:"type:tinyint unsigned;not null;comment:Papel 1=cozinha 2=gerente"`
	Ctime    int64
	Utime    int64
}
