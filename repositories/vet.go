package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vetcare-app/vetcare-api/models"
)

// VetRepo exposes the persistence layer pre-filtered by the veterinarian's
// identity: a vet only reaches animals and clients tied to their own
// rendez-vous.
type VetRepo struct {
	db *gorm.DB
}

func NewVetRepo(db *gorm.DB) VetRepo {
	return VetRepo{db: db}
}

// Animals returns the distinct set of animals referenced by any rendez-vous
// assigned to the vet. Two-step filter then lookup, volumes are small.
func (r VetRepo) Animals(vetID uint) ([]models.Animal, error) {
	var animalIDs []uint
	err := r.db.Model(&models.RendezVous{}).
		Where("vet_id = ?", vetID).
		Distinct("animal_id").
		Pluck("animal_id", &animalIDs).Error
	if err != nil {
		return nil, err
	}
	animals := make([]models.Animal, 0)
	if len(animalIDs) == 0 {
		return animals, nil
	}
	if err := r.db.Preload("Owner").Where("id IN ?", animalIDs).Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

// Clients returns users with at least one rendez-vous assigned to the vet.
func (r VetRepo) Clients(vetID uint) ([]models.User, error) {
	sub := r.db.Model(&models.RendezVous{}).
		Select("client_id").
		Where("vet_id = ?", vetID)
	clients := make([]models.User, 0)
	if err := r.db.Where("id IN (?)", sub).Find(&clients).Error; err != nil {
		return nil, err
	}
	for i := range clients {
		clients[i].Password = ""
	}
	return clients, nil
}

// RendezVous lists the vet's appointments, optionally filtered by status.
func (r VetRepo) RendezVous(vetID uint, status models.RendezVousStatus) ([]models.RendezVous, error) {
	query := r.db.Preload("Client").Preload("Animal").
		Where("vet_id = ?", vetID).
		Order("date asc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var rdvs []models.RendezVous
	if err := query.Find(&rdvs).Error; err != nil {
		return nil, err
	}
	return rdvs, nil
}

// UpdateRendezVousStatus transitions one of the vet's own appointments.
// ErrNotFound if the id doesn't exist, ErrForbidden if it belongs to another
// vet, ErrInvalidTransition if the state machine disallows the move. The
// stored status is untouched in all three cases.
func (r VetRepo) UpdateRendezVousStatus(vetID, rdvID uint, newStatus models.RendezVousStatus) (models.RendezVous, error) {
	if !newStatus.Valid() {
		return models.RendezVous{}, ErrInvalidTransition
	}
	var rdv models.RendezVous
	if err := r.db.First(&rdv, rdvID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RendezVous{}, ErrNotFound
		}
		return models.RendezVous{}, err
	}
	if rdv.VetID != vetID {
		return models.RendezVous{}, ErrForbidden
	}
	if !rdv.Status.CanTransitionTo(newStatus) {
		return models.RendezVous{}, ErrInvalidTransition
	}
	rdv.Status = newStatus
	if err := r.db.Save(&rdv).Error; err != nil {
		return models.RendezVous{}, err
	}
	return rdv, nil
}

// CreateConsultation records the outcome of one of the vet's rendez-vous.
// The rendez-vous must be confirmed or completed and not already consulted.
func (r VetRepo) CreateConsultation(vetID uint, consultation *models.Consultation) error {
	var rdv models.RendezVous
	if err := r.db.First(&rdv, consultation.RendezVousID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if rdv.VetID != vetID {
		return ErrForbidden
	}
	if rdv.Status != models.StatusConfirmed && rdv.Status != models.StatusCompleted {
		return ErrInvalidTransition
	}
	var existing models.Consultation
	if r.db.Where("rendez_vous_id = ?", rdv.ID).First(&existing).RowsAffected > 0 {
		return ErrAlreadyExists
	}
	consultation.VetID = vetID
	consultation.AnimalID = rdv.AnimalID
	return r.db.Create(consultation).Error
}

// Consultations lists the consultations written by the vet.
func (r VetRepo) Consultations(vetID uint) ([]models.Consultation, error) {
	var consultations []models.Consultation
	err := r.db.Preload("Animal").
		Where("vet_id = ?", vetID).
		Order("date desc").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

// AddVaccination records a vaccination for an animal the vet treats.
func (r VetRepo) AddVaccination(vetID uint, vaccination *models.Vaccination) error {
	visible, err := r.animalVisible(vetID, vaccination.AnimalID)
	if err != nil {
		return err
	}
	if !visible {
		return ErrForbidden
	}
	return r.db.Create(vaccination).Error
}

// VaccinationsForAnimal lists vaccinations of an animal reachable through the
// vet's rendez-vous.
func (r VetRepo) VaccinationsForAnimal(vetID, animalID uint) ([]models.Vaccination, error) {
	visible, err := r.animalVisible(vetID, animalID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrForbidden
	}
	vaccinations := make([]models.Vaccination, 0)
	if err := r.db.Where("animal_id = ?", animalID).Find(&vaccinations).Error; err != nil {
		return nil, err
	}
	return vaccinations, nil
}

// AvailableProducts returns only products flagged available.
func (r VetRepo) AvailableProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("available = ?", true).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r VetRepo) animalVisible(vetID, animalID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.RendezVous{}).
		Where("vet_id = ? AND animal_id = ?", vetID, animalID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
