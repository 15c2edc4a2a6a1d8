package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vetcare-app/vetcare-api/models"
)

// ClientRepo exposes the persistence layer pre-filtered by the owning
// client's identity. Every read is scoped by owner_id.
type ClientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepo {
	return ClientRepo{db: db}
}

// AnimalsByOwner returns all animals owned by the given client.
func (r ClientRepo) AnimalsByOwner(ownerID uint) ([]models.Animal, error) {
	var animals []models.Animal
	if err := r.db.Where("owner_id = ?", ownerID).Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

// AnimalByID returns one animal, ErrForbidden if it belongs to someone else.
func (r ClientRepo) AnimalByID(ownerID, animalID uint) (models.Animal, error) {
	var animal models.Animal
	if err := r.db.First(&animal, animalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Animal{}, ErrNotFound
		}
		return models.Animal{}, err
	}
	if animal.OwnerID != ownerID {
		return models.Animal{}, ErrForbidden
	}
	return animal, nil
}

func (r ClientRepo) CreateAnimal(animal *models.Animal) error {
	return r.db.Create(animal).Error
}

func (r ClientRepo) UpdateAnimal(ownerID, animalID uint, updates models.Animal) (models.Animal, error) {
	animal, err := r.AnimalByID(ownerID, animalID)
	if err != nil {
		return models.Animal{}, err
	}
	updates.ID = animal.ID
	updates.OwnerID = animal.OwnerID
	if err := r.db.Model(&animal).Updates(updates).Error; err != nil {
		return models.Animal{}, err
	}
	return animal, nil
}

// DeleteAnimal removes one of the client's animals. A missing id is a plain
// NotFound, never a nil dereference.
func (r ClientRepo) DeleteAnimal(ownerID, animalID uint) error {
	animal, err := r.AnimalByID(ownerID, animalID)
	if err != nil {
		return err
	}
	return r.db.Delete(&animal).Error
}

// RendezVous returns the client's appointments, newest first.
func (r ClientRepo) RendezVous(clientID uint) ([]models.RendezVous, error) {
	var rdvs []models.RendezVous
	err := r.db.Preload("Vet").Preload("Animal").
		Where("client_id = ?", clientID).
		Order("date desc").
		Find(&rdvs).Error
	if err != nil {
		return nil, err
	}
	return rdvs, nil
}

// BookRendezVous creates a pending appointment. The animal must belong to the
// booking client and the assignee must be a veterinarian.
func (r ClientRepo) BookRendezVous(rdv *models.RendezVous) error {
	if _, err := r.AnimalByID(rdv.ClientID, rdv.AnimalID); err != nil {
		return err
	}
	var vet models.User
	if err := r.db.Preload("Role").First(&vet, rdv.VetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if vet.Role.Name != models.RoleVeterinaire {
		return ErrForbidden
	}
	rdv.Status = models.StatusPending
	return r.db.Create(rdv).Error
}

// CancelRendezVous cancels one of the client's own pending appointments.
func (r ClientRepo) CancelRendezVous(clientID, rdvID uint) (models.RendezVous, error) {
	var rdv models.RendezVous
	if err := r.db.First(&rdv, rdvID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RendezVous{}, ErrNotFound
		}
		return models.RendezVous{}, err
	}
	if rdv.ClientID != clientID {
		return models.RendezVous{}, ErrForbidden
	}
	if !rdv.Status.CanTransitionTo(models.StatusCancelled) {
		return models.RendezVous{}, ErrInvalidTransition
	}
	rdv.Status = models.StatusCancelled
	if err := r.db.Save(&rdv).Error; err != nil {
		return models.RendezVous{}, err
	}
	return rdv, nil
}

// Consultations returns consultations for the client's animals, optionally
// narrowed to one animal. animalID 0 means all of them.
func (r ClientRepo) Consultations(clientID, animalID uint) ([]models.Consultation, error) {
	query := r.db.Preload("Vet").Preload("Animal").
		Joins("JOIN animals ON animals.id = consultations.animal_id").
		Where("animals.owner_id = ?", clientID)
	if animalID != 0 {
		query = query.Where("consultations.animal_id = ?", animalID)
	}
	var consultations []models.Consultation
	if err := query.Find(&consultations).Error; err != nil {
		return nil, err
	}
	return consultations, nil
}

// Vaccinations filters vaccinations by the animal's owner, optionally
// narrowed to one animal id.
func (r ClientRepo) Vaccinations(clientID, animalID uint) ([]models.Vaccination, error) {
	query := r.db.Preload("Animal").
		Joins("JOIN animals ON animals.id = vaccinations.animal_id").
		Where("animals.owner_id = ?", clientID)
	if animalID != 0 {
		query = query.Where("vaccinations.animal_id = ?", animalID)
	}
	var vaccinations []models.Vaccination
	if err := query.Find(&vaccinations).Error; err != nil {
		return nil, err
	}
	return vaccinations, nil
}

// AvailableProducts returns only products flagged available.
func (r ClientRepo) AvailableProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("available = ?", true).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
