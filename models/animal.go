package models

import (
	"time"
)

type Animal struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Species        string    `json:"species"`
	Breed          string    `json:"breed"`
	Age            int       `json:"age"`
	Sex            string    `json:"sex"`
	Allergies      string    `json:"allergies"`
	MedicalHistory string    `json:"medical_history"`
	OwnerID        uint      `json:"owner_id"`
	Owner          User      `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
