package models

import (
	"time"
)

const (
	RoleAdmin       = "admin"
	RoleVeterinaire = "veterinaire"
	RoleClient      = "client"
)

type Role struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"unique"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
