package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	Name           string    `gorm:"type:varchar(100)"`
	PasswordHash   string    `gorm:"type:varchar(255)"`
	EmailConfirmed bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time `gorm:"index"`

	Profile *ProfileModel `gorm:"foreignKey:UserID"`
	Orders  []OrderModel  `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. UserID references users.id (UUID).
type ProfileModel struct {
	UserID    uuid.UUID `gorm:"primaryKey"`
	Role      string    `gorm:"type:varchar(20);not null;default:'user'"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
