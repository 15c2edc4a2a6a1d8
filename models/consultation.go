package models

import (
	"time"
)

// Consultation is the outcome of a rendez-vous, one per rendez-vous.
type Consultation struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Date         time.Time  `json:"date"`
	Diagnostic   string     `json:"diagnostic"`
	Treatment    string     `json:"treatment"`
	Prescription string     `json:"prescription"`
	Notes        string     `json:"notes"`
	DocumentURL  string     `json:"document_url"`
	RendezVousID uint       `json:"rendez_vous_id" gorm:"uniqueIndex"`
	RendezVous   RendezVous `json:"rendez_vous,omitempty" gorm:"foreignKey:RendezVousID"`
	VetID        uint       `json:"vet_id"`
	Vet          User       `json:"vet,omitempty" gorm:"foreignKey:VetID"`
	AnimalID     uint       `json:"animal_id"`
	Animal       Animal     `json:"animal,omitempty" gorm:"foreignKey:AnimalID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
