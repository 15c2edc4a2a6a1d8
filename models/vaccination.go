package models

import (
	"time"
)

type Vaccination struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	AnimalID  uint      `json:"animal_id"`
	Animal    Animal    `json:"animal,omitempty" gorm:"foreignKey:AnimalID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
