package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	FarmerProfile   *FarmerProfileModel   `gorm:"foreignKey:UserID"`
	ConsumerProfile *ConsumerProfileModel `gorm:"foreignKey:UserID"`
	AdminProfile    *AdminProfileModel    `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// FarmerProfileModel mirrors the 'farmer_profiles' table. UserID references users.id (UUID).
type FarmerProfileModel struct {
	UserID       uuid.UUID `gorm:"primaryKey"`
	FarmName     string    `gorm:"type:varchar(100);not null"`
	FarmLocation string    `gorm:"type:varchar(255)"`
	Bio          string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FarmerProfileModel) TableName() string {
	return "farmer_profiles"
}

// ConsumerProfileModel mirrors the 'consumer_profiles' table. UserID references users.id (UUID).
type ConsumerProfileModel struct {
	UserID         uuid.UUID `gorm:"primaryKey"`
	Phone          string    `gorm:"type:varchar(30)"`
	DefaultAddress string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConsumerProfileModel) TableName() string {
	return "consumer_profiles"
}

// AdminProfileModel mirrors the 'admin_profiles' table. Rows are seeded, never self-registered.
type AdminProfileModel struct {
	UserID    uuid.UUID `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminProfileModel) TableName() string {
	return "admin_profiles"
}
