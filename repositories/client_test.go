package repositories

import (
	"errors"
	"testing"

	"github.com/vetcare-app/vetcare-api/models"
)

func TestAnimalsByOwnerScoping(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepo(db)

	c1 := createUser(t, db, "Alice", "alice@example.com", models.RoleClient)
	c2 := createUser(t, db, "Bob", "bob@example.com", models.RoleClient)
	rex := createAnimal(t, db, "Rex", c1.ID)
	createAnimal(t, db, "Milo", c2.ID)

	animals, err := repo.AnimalsByOwner(c1.ID)
	if err != nil {
		t.Fatalf("AnimalsByOwner failed: %v", err)
	}
	if len(animals) != 1 || animals[0].ID != rex.ID {
		t.Fatalf("expected exactly [Rex], got %+v", animals)
	}

	animals, err = repo.AnimalsByOwner(9999)
	if err != nil {
		t.Fatalf("AnimalsByOwner on unknown owner failed: %v", err)
	}
	if len(animals) != 0 {
		t.Fatalf("expected empty result for unknown owner, got %d animals", len(animals))
	}
}

func TestAnimalByIDForbidden(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepo(db)

	c1 := createUser(t, db, "Alice", "alice@example.com", models.RoleClient)
	c2 := createUser(t, db, "Bob", "bob@example.com", models.RoleClient)
	rex := createAnimal(t, db, "Rex", c1.ID)

	if _, err := repo.AnimalByID(c2.ID, rex.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for someone else's animal, got %v", err)
	}
	if _, err := repo.AnimalByID(c1.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing animal, got %v", err)
	}
}

func TestDeleteAnimal(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepo(db)

	c1 := createUser(t, db, "Alice", "alice@example.com", models.RoleClient)
	rex := createAnimal(t, db, "Rex", c1.ID)

	// Missing id is a plain NotFound, not a fault
	if err := repo.DeleteAnimal(c1.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting a missing animal, got %v", err)
	}

	if err := repo.DeleteAnimal(c1.ID, rex.ID); err != nil {
		t.Fatalf("DeleteAnimal failed: %v", err)
	}
	if _, err := repo.AnimalByID(c1.ID, rex.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected animal gone after delete, got %v", err)
	}
}

func TestVaccinationsByClient(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepo(db)

	c1 := createUser(t, db, "Alice", "alice@example.com", models.RoleClient)
	c2 := createUser(t, db, "Bob", "bob@example.com", models.RoleClient)
	rex := createAnimal(t, db, "Rex", c1.ID)
	luna := createAnimal(t, db, "Luna", c1.ID)
	milo := createAnimal(t, db, "Milo", c2.ID)

	createVaccination(t, db, "rabies", rex.ID)
	createVaccination(t, db, "parvo", luna.ID)
	createVaccination(t, db, "rabies", milo.ID)

	// Omitting the animal id returns the union across the client's animals
	all, err := repo.Vaccinations(c1.ID, 0)
	if err != nil {
		t.Fatalf("Vaccinations failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 vaccinations for c1, got %d", len(all))
	}
	for _, v := range all {
		if v.AnimalID != rex.ID && v.AnimalID != luna.ID {
			t.Fatalf("vaccination %d belongs to a foreign animal %d", v.ID, v.AnimalID)
		}
	}

	// Narrowed to one animal
	only, err := repo.Vaccinations(c1.ID, rex.ID)
	if err != nil {
		t.Fatalf("Vaccinations narrowed failed: %v", err)
	}
	if len(only) != 1 || only[0].AnimalID != rex.ID {
		t.Fatalf("expected only Rex's vaccination, got %+v", only)
	}

	// Another owner's animal id yields nothing for this client
	none, err := repo.Vaccinations(c1.ID, milo.ID)
	if err != nil {
		t.Fatalf("Vaccinations foreign animal failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no vaccinations for a foreign animal, got %d", len(none))
	}
}

func TestAvailableProductsGating(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepo(db)
	adminRepo := NewAdminRepo(db)

	visible := models.Product{Name: "Flea collar", Price: 12.5, Available: true}
	hidden := models.Product{Name: "Recalled food", Price: 30, Available: false}
	if err := db.Create(&visible).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	if err := db.Create(&hidden).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	products, err := repo.AvailableProducts()
	if err != nil {
		t.Fatalf("AvailableProducts failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != visible.ID {
		t.Fatalf("expected only the available product, got %+v", products)
	}

	// Toggling availability includes it on the next read
	if _, err := adminRepo.SetProductAvailability(hidden.ID, true); err != nil {
		t.Fatalf("SetProductAvailability failed: %v", err)
	}
	products, err = repo.AvailableProducts()
	if err != nil {
		t.Fatalf("AvailableProducts after toggle failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected both products after toggle, got %d", len(products))
	}
}

func TestBookAndCancelRendezVous(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepo(db)

	vet := createUser(t, db, "Dr. Vet", "vet@example.com", models.RoleVeterinaire)
	c1 := createUser(t, db, "Alice", "alice@example.com", models.RoleClient)
	c2 := createUser(t, db, "Bob", "bob@example.com", models.RoleClient)
	rex := createAnimal(t, db, "Rex", c1.ID)

	rdv := models.RendezVous{VetID: vet.ID, ClientID: c1.ID, AnimalID: rex.ID}
	if err := repo.BookRendezVous(&rdv); err != nil {
		t.Fatalf("BookRendezVous failed: %v", err)
	}
	if rdv.Status != models.StatusPending {
		t.Fatalf("expected new rendez-vous to be pending, got %s", rdv.Status)
	}

	// Booking someone else's animal is forbidden
	foreign := models.RendezVous{VetID: vet.ID, ClientID: c2.ID, AnimalID: rex.ID}
	if err := repo.BookRendezVous(&foreign); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden booking a foreign animal, got %v", err)
	}

	// Booking with a non-vet assignee is forbidden
	wrongVet := models.RendezVous{VetID: c2.ID, ClientID: c1.ID, AnimalID: rex.ID}
	if err := repo.BookRendezVous(&wrongVet); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden booking with a non-vet, got %v", err)
	}

	// Only the booking client can cancel
	if _, err := repo.CancelRendezVous(c2.ID, rdv.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden cancelling another client's rendez-vous, got %v", err)
	}
	cancelled, err := repo.CancelRendezVous(c1.ID, rdv.ID)
	if err != nil {
		t.Fatalf("CancelRendezVous failed: %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Fatalf("expected cancelled status, got %s", cancelled.Status)
	}

	// Cancelled is terminal
	if _, err := repo.CancelRendezVous(c1.ID, rdv.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition cancelling twice, got %v", err)
	}
}
