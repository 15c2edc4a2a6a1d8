package repositories

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vetcare-app/vetcare-api/models"
)

// AdminRepo is the unscoped view of the persistence layer.
type AdminRepo struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) AdminRepo {
	return AdminRepo{db: db}
}

// CreateUserWithRole creates a user with a bcrypt-hashed password and the
// named role. Used for veterinarian (and admin) accounts which can only be
// opened by an administrator.
func (r AdminRepo) CreateUserWithRole(user *models.User, roleName string) error {
	var existing models.User
	if r.db.Where("email = ?", user.Email).First(&existing).RowsAffected > 0 {
		return ErrAlreadyExists
	}
	var role models.Role
	if err := r.db.Where("name = ?", roleName).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	user.RoleID = role.ID
	user.Role = role
	return r.db.Create(user).Error
}

// UsersByRole lists users holding the named role.
func (r AdminRepo) UsersByRole(roleName string) ([]models.User, error) {
	users := make([]models.User, 0)
	err := r.db.Preload("Role").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", roleName).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (r AdminRepo) GetUser(id uint) (models.User, error) {
	var user models.User
	if err := r.db.Preload("Role").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (r AdminRepo) DeleteUser(id uint) error {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return r.db.Delete(&user).Error
}

func (r AdminRepo) Animals() ([]models.Animal, error) {
	var animals []models.Animal
	if err := r.db.Preload("Owner").Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

func (r AdminRepo) DeleteAnimal(id uint) error {
	var animal models.Animal
	if err := r.db.First(&animal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return r.db.Delete(&animal).Error
}

func (r AdminRepo) RendezVous() ([]models.RendezVous, error) {
	var rdvs []models.RendezVous
	err := r.db.Preload("Vet").Preload("Client").Preload("Animal").
		Order("date desc").
		Find(&rdvs).Error
	if err != nil {
		return nil, err
	}
	return rdvs, nil
}

func (r AdminRepo) DeleteRendezVous(id uint) error {
	var rdv models.RendezVous
	if err := r.db.First(&rdv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return r.db.Delete(&rdv).Error
}

// Products lists every product regardless of availability.
func (r AdminRepo) Products() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r AdminRepo) CreateProduct(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r AdminRepo) UpdateProduct(id uint, updates models.Product) (models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	updates.ID = product.ID
	if err := r.db.Model(&product).Updates(updates).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// SetProductAvailability toggles the flag gating vet/client visibility.
func (r AdminRepo) SetProductAvailability(id uint, available bool) (models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	if err := r.db.Model(&product).Update("available", available).Error; err != nil {
		return models.Product{}, err
	}
	product.Available = available
	return product, nil
}

func (r AdminRepo) DeleteProduct(id uint) error {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return r.db.Delete(&product).Error
}
