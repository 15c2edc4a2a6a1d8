package dto

import (
	"github.com/vetcare-app/vetcare-api/models"
)

// AnimalDTO is the owner's view of an animal.
type AnimalDTO struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Species        string `json:"species"`
	Breed          string `json:"breed"`
	Age            int    `json:"age"`
	Sex            string `json:"sex"`
	Allergies      string `json:"allergies"`
	MedicalHistory string `json:"medical_history"`
}

// VetAnimalDTO is the treating vet's view: the medical fields plus the owner
// name, which the vet is linked to through a shared rendez-vous.
type VetAnimalDTO struct {
	AnimalDTO
	OwnerID   uint   `json:"owner_id"`
	OwnerName string `json:"owner_name"`
}

func NewAnimalDTO(a models.Animal) AnimalDTO {
	return AnimalDTO{
		ID:             a.ID,
		Name:           a.Name,
		Species:        a.Species,
		Breed:          a.Breed,
		Age:            a.Age,
		Sex:            a.Sex,
		Allergies:      a.Allergies,
		MedicalHistory: a.MedicalHistory,
	}
}

func NewAnimalDTOs(animals []models.Animal) []AnimalDTO {
	out := make([]AnimalDTO, 0, len(animals))
	for _, a := range animals {
		out = append(out, NewAnimalDTO(a))
	}
	return out
}

func NewVetAnimalDTO(a models.Animal) VetAnimalDTO {
	return VetAnimalDTO{
		AnimalDTO: NewAnimalDTO(a),
		OwnerID:   a.OwnerID,
		OwnerName: a.Owner.Name,
	}
}

func NewVetAnimalDTOs(animals []models.Animal) []VetAnimalDTO {
	out := make([]VetAnimalDTO, 0, len(animals))
	for _, a := range animals {
		out = append(out, NewVetAnimalDTO(a))
	}
	return out
}
