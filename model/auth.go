package model

import (
	"time"
)

// Akun is an administrator account. Accounts live in Postgres, separate from
// the site content collections in Mongo.
type Akun struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id_user"`
	Nama      string    `gorm:"type:varchar(100);not null" json:"nama"`
	NoTelp    string    `gorm:"type:varchar(15)" json:"no_telp"`
	Email     string    `gorm:"type:varchar(100);unique;not null" json:"email"`
	RoleID    int       `gorm:"type:int;not null" json:"id_role"`
	Password  string    `gorm:"type:varchar(255);not null" json:"password,omitempty"`
	Image     string    `gorm:"type:text" json:"image,omitempty"`
	CreatedAt time.Time `gorm:"type:timestamp;default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:current_timestamp" json:"updated_at"`
}

func (Akun) TableName() string {
	return "akun"
}

type Role struct {
	ID       int     `gorm:"primaryKey;autoIncrement" json:"id_role"`
	Rolename string  `gorm:"type:varchar(255);not null" json:"name_role"`
	Desc     *string `gorm:"type:text" json:"deskripsi"`
	Status   bool    `gorm:"default:true" json:"status"`
}

func (Role) TableName() string {
	return "role"
}
