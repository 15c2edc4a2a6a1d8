package dto

import (
	"time"

	"github.com/vetcare-app/vetcare-api/models"
)

type VaccinationDTO struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	AnimalID   uint      `json:"animal_id"`
	AnimalName string    `json:"animal_name,omitempty"`
}

func NewVaccinationDTO(v models.Vaccination) VaccinationDTO {
	return VaccinationDTO{
		ID:         v.ID,
		Name:       v.Name,
		Date:       v.Date,
		AnimalID:   v.AnimalID,
		AnimalName: v.Animal.Name,
	}
}

func NewVaccinationDTOs(vaccinations []models.Vaccination) []VaccinationDTO {
	out := make([]VaccinationDTO, 0, len(vaccinations))
	for _, v := range vaccinations {
		out = append(out, NewVaccinationDTO(v))
	}
	return out
}
