package dto

import (
	"time"

	"github.com/vetcare-app/vetcare-api/models"
)

type RendezVousDTO struct {
	ID         uint                    `json:"id"`
	Date       time.Time               `json:"date"`
	Motif      string                  `json:"motif"`
	Status     models.RendezVousStatus `json:"status"`
	VetID      uint                    `json:"vet_id"`
	VetName    string                  `json:"vet_name,omitempty"`
	ClientID   uint                    `json:"client_id"`
	ClientName string                  `json:"client_name,omitempty"`
	AnimalID   uint                    `json:"animal_id"`
	AnimalName string                  `json:"animal_name,omitempty"`
}

func NewRendezVousDTO(r models.RendezVous) RendezVousDTO {
	return RendezVousDTO{
		ID:         r.ID,
		Date:       r.Date,
		Motif:      r.Motif,
		Status:     r.Status,
		VetID:      r.VetID,
		VetName:    r.Vet.Name,
		ClientID:   r.ClientID,
		ClientName: r.Client.Name,
		AnimalID:   r.AnimalID,
		AnimalName: r.Animal.Name,
	}
}

func NewRendezVousDTOs(rdvs []models.RendezVous) []RendezVousDTO {
	out := make([]RendezVousDTO, 0, len(rdvs))
	for _, r := range rdvs {
		out = append(out, NewRendezVousDTO(r))
	}
	return out
}
