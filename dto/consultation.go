package dto

import (
	"time"

	"github.com/vetcare-app/vetcare-api/models"
)

type ConsultationDTO struct {
	ID           uint      `json:"id"`
	Date         time.Time `json:"date"`
	Diagnostic   string    `json:"diagnostic"`
	Treatment    string    `json:"treatment"`
	Prescription string    `json:"prescription"`
	Notes        string    `json:"notes"`
	DocumentURL  string    `json:"document_url,omitempty"`
	RendezVousID uint      `json:"rendez_vous_id"`
	VetName      string    `json:"vet_name,omitempty"`
	AnimalName   string    `json:"animal_name,omitempty"`
}

func NewConsultationDTO(c models.Consultation) ConsultationDTO {
	return ConsultationDTO{
		ID:           c.ID,
		Date:         c.Date,
		Diagnostic:   c.Diagnostic,
		Treatment:    c.Treatment,
		Prescription: c.Prescription,
		Notes:        c.Notes,
		DocumentURL:  c.DocumentURL,
		RendezVousID: c.RendezVousID,
		VetName:      c.Vet.Name,
		AnimalName:   c.Animal.Name,
	}
}

func NewConsultationDTOs(consultations []models.Consultation) []ConsultationDTO {
	out := make([]ConsultationDTO, 0, len(consultations))
	for _, c := range consultations {
		out = append(out, NewConsultationDTO(c))
	}
	return out
}
