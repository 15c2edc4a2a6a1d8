package models

import (
	"time"

	"gorm.io/gorm"
)

type RendezVousStatus string

const (
	StatusPending   RendezVousStatus = "pending"
	StatusConfirmed RendezVousStatus = "confirmed"
	StatusCancelled RendezVousStatus = "cancelled"
	StatusCompleted RendezVousStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s RendezVousStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is allowed.
// pending can be confirmed or cancelled, confirmed can be completed or
// cancelled, terminal statuses are frozen.
func (s RendezVousStatus) CanTransitionTo(next RendezVousStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// RendezVous links a client, an animal and a veterinarian at a date.
type RendezVous struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	Date      time.Time        `json:"date"`
	Motif     string           `json:"motif"`
	Status    RendezVousStatus `json:"status"`
	VetID     uint             `json:"vet_id"`
	Vet       User             `json:"vet,omitempty" gorm:"foreignKey:VetID"`
	ClientID  uint             `json:"client_id"`
	Client    User             `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	AnimalID  uint             `json:"animal_id"`
	Animal    Animal           `json:"animal,omitempty" gorm:"foreignKey:AnimalID"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func (RendezVous) TableName() string {
	return "rendez_vous"
}

func (r *RendezVous) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = StatusPending
	}
	return nil
}
