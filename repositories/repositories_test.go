package repositories

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vetcare-app/vetcare-api/models"
)

// newTestDB opens an isolated in-memory database with the full schema and
// the fixed roles. One connection only, so the memory DB survives the pool.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Animal{},
		&models.RendezVous{},
		&models.Consultation{},
		&models.Vaccination{},
		&models.Product{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	roles := []models.Role{
		{Name: models.RoleAdmin},
		{Name: models.RoleVeterinaire},
		{Name: models.RoleClient},
	}
	for i := range roles {
		if err := db.Create(&roles[i]).Error; err != nil {
			t.Fatalf("failed to seed role %s: %v", roles[i].Name, err)
		}
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email, roleName string) models.User {
	t.Helper()

	var role models.Role
	if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
		t.Fatalf("role %s not seeded: %v", roleName, err)
	}
	user := models.User{
		Name:     name,
		Email:    email,
		Password: "hashed",
		RoleID:   role.ID,
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

func createAnimal(t *testing.T, db *gorm.DB, name string, ownerID uint) models.Animal {
	t.Helper()

	animal := models.Animal{
		Name:    name,
		Species: "dog",
		OwnerID: ownerID,
	}
	if err := db.Create(&animal).Error; err != nil {
		t.Fatalf("failed to create animal %s: %v", name, err)
	}
	return animal
}

func createRendezVous(t *testing.T, db *gorm.DB, vetID, clientID, animalID uint, status models.RendezVousStatus) models.RendezVous {
	t.Helper()

	rdv := models.RendezVous{
		Date:     time.Now().Add(24 * time.Hour),
		Motif:    "checkup",
		Status:   status,
		VetID:    vetID,
		ClientID: clientID,
		AnimalID: animalID,
	}
	if err := db.Create(&rdv).Error; err != nil {
		t.Fatalf("failed to create rendez-vous: %v", err)
	}
	return rdv
}

func createVaccination(t *testing.T, db *gorm.DB, name string, animalID uint) models.Vaccination {
	t.Helper()

	vaccination := models.Vaccination{
		Name:     name,
		Date:     time.Now(),
		AnimalID: animalID,
	}
	if err := db.Create(&vaccination).Error; err != nil {
		t.Fatalf("failed to create vaccination %s: %v", name, err)
	}
	return vaccination
}
