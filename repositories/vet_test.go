package repositories

import (
	"errors"
	"testing"

	"github.com/vetcare-app/vetcare-api/models"
)

func TestAnimalsByVet(t *testing.T) {
	db := newTestDB(t)
	repo := NewVetRepo(db)

	v1 := createUser(t, db, "Dr. One", "v1@example.com", models.RoleVeterinaire)
	v2 := createUser(t, db, "Dr. Two", "v2@example.com", models.RoleVeterinaire)
	c1 := createUser(t, db, "Alice", "alice@example.com", models.RoleClient)
	rex := createAnimal(t, db, "Rex", c1.ID)

	createRendezVous(t, db, v1.ID, c1.ID, rex.ID, models.StatusPending)

	animals, err := repo.Animals(v1.ID)
	if err != nil {
		t.Fatalf("Animals failed: %v", err)
	}
	if len(animals) != 1 || animals[0].Name != "Rex" {
		t.Fatalf("expected exactly [Rex] for v1, got %+v", animals)
	}

	// No shared rendez-vous, no animals
	animals, err = repo.Animals(v2.ID)
	if err != nil {
		t.Fatalf("Animals for v2 failed: %v", err)
	}
	if len(animals) != 0 {
		t.Fatalf("expected no animals for v2, got %d", len(animals))
	}
}

func TestAnimalsByVetDistinct(t *testing.T) {
	db := newTestDB(t)
	repo := NewVetRepo(db)

	v1 := createUser(t, db, "Dr. One", "v1@example.com", models.RoleVeterinaire)
	c1 := createUser(t, db, "Alice", "alice@example.com", models.RoleClient)
	rex := createAnimal(t, db, "Rex", c1.ID)

	// Two rendez-vous about the same animal yield one entry
	createRendezVous(t, db, v1.ID, c1.ID, rex.ID, models.StatusCompleted)
	createRendezVous(t, db, v1.ID, c1.ID, rex.ID, models.StatusPending)

	animals, err := repo.Animals(v1.ID)
	if err != nil {
		t.Fatalf("Animals failed: %v", err)
	}
	if len(animals) != 1 {
		t.Fatalf("expected distinct animals, got %d entries", len(animals))
	}
}

func TestClientsOfVet(t *testing.T) {
	db := newTestDB(t)
	repo := NewVetRepo(db)

	v1 := createUser(t, db, "Dr. One", "v1@example.com", models.RoleVeterinaire)
	c1 := createUser(t, db, "Alice", "alice@example.com", models.RoleClient)
	c2 := createUser(t, db, "Bob", "bob@example.com", models.RoleClient)
	rex := createAnimal(t, db, "Rex", c1.ID)

	createRendezVous(t, db, v1.ID, c1.ID, rex.ID, models.StatusPending)

	clients, err := repo.Clients(v1.ID)
	if err != nil {
		t.Fatalf("Clients failed: %v", err)
	}
	if len(clients) != 1 || clients[0].ID != c1.ID {
		t.Fatalf("expected only Alice, got %+v", clients)
	}
	if clients[0].Password != "" {
		t.Fatal("client listing must not expose password hashes")
	}
	_ = c2
}

func TestUpdateRendezVousStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewVetRepo(db)

	v1 := createUser(t, db, "Dr. One", "v1@example.com", models.RoleVeterinaire)
	v2 := createUser(t, db, "Dr. Two", "v2@example.com", models.RoleVeterinaire)
	c1 := createUser(t, db, "Alice", "alice@example.com", models.RoleClient)
	rex := createAnimal(t, db, "Rex", c1.ID)
	rdv := createRendezVous(t, db, v1.ID, c1.ID, rex.ID, models.StatusPending)

	// Another vet is forbidden and the stored status stays untouched
	if _, err := repo.UpdateRendezVousStatus(v2.ID, rdv.ID, models.StatusConfirmed); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-assigned vet, got %v", err)
	}
	var stored models.RendezVous
	if err := db.First(&stored, rdv.ID).Error; err != nil {
		t.Fatalf("failed to reload rendez-vous: %v", err)
	}
	if stored.Status != models.StatusPending {
		t.Fatalf("status changed by a forbidden update: %s", stored.Status)
	}

	// Missing id is NotFound, distinct from Forbidden
	if _, err := repo.UpdateRendezVousStatus(v1.ID, 9999, models.StatusConfirmed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing rendez-vous, got %v", err)
	}

	// pending cannot jump straight to completed
	if _, err := repo.UpdateRendezVousStatus(v1.ID, rdv.ID, models.StatusCompleted); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for pending->completed, got %v", err)
	}

	updated, err := repo.UpdateRendezVousStatus(v1.ID, rdv.ID, models.StatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateRendezVousStatus failed: %v", err)
	}
	if updated.Status != models.StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", updated.Status)
	}
	if !updated.UpdatedAt.After(rdv.UpdatedAt) {
		t.Fatal("expected UpdatedAt to move forward on a status change")
	}
}

func TestCreateConsultation(t *testing.T) {
	db := newTestDB(t)
	repo := NewVetRepo(db)

	v1 := createUser(t, db, "Dr. One", "v1@example.com", models.RoleVeterinaire)
	v2 := createUser(t, db, "Dr. Two", "v2@example.com", models.RoleVeterinaire)
	c1 := createUser(t, db, "Alice", "alice@example.com", models.RoleClient)
	rex := createAnimal(t, db, "Rex", c1.ID)

	pending := createRendezVous(t, db, v1.ID, c1.ID, rex.ID, models.StatusPending)
	confirmed := createRendezVous(t, db, v1.ID, c1.ID, rex.ID, models.StatusConfirmed)

	// Pending rendez-vous cannot be consulted yet
	err := repo.CreateConsultation(v1.ID, &models.Consultation{RendezVousID: pending.ID, Diagnostic: "otitis"})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for a pending rendez-vous, got %v", err)
	}

	// Only the assigned vet may consult
	err = repo.CreateConsultation(v2.ID, &models.Consultation{RendezVousID: confirmed.ID, Diagnostic: "otitis"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for another vet, got %v", err)
	}

	consultation := models.Consultation{RendezVousID: confirmed.ID, Diagnostic: "otitis"}
	if err := repo.CreateConsultation(v1.ID, &consultation); err != nil {
		t.Fatalf("CreateConsultation failed: %v", err)
	}
	if consultation.VetID != v1.ID || consultation.AnimalID != rex.ID {
		t.Fatalf("consultation not stamped with vet/animal: %+v", consultation)
	}

	// One consultation per rendez-vous
	err = repo.CreateConsultation(v1.ID, &models.Consultation{RendezVousID: confirmed.ID, Diagnostic: "again"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for a second consultation, got %v", err)
	}

	// Missing rendez-vous is NotFound
	err = repo.CreateConsultation(v1.ID, &models.Consultation{RendezVousID: 9999, Diagnostic: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a missing rendez-vous, got %v", err)
	}
}

func TestVetVaccinations(t *testing.T) {
	db := newTestDB(t)
	repo := NewVetRepo(db)

	v1 := createUser(t, db, "Dr. One", "v1@example.com", models.RoleVeterinaire)
	c1 := createUser(t, db, "Alice", "alice@example.com", models.RoleClient)
	c2 := createUser(t, db, "Bob", "bob@example.com", models.RoleClient)
	rex := createAnimal(t, db, "Rex", c1.ID)
	milo := createAnimal(t, db, "Milo", c2.ID)

	createRendezVous(t, db, v1.ID, c1.ID, rex.ID, models.StatusConfirmed)

	// Treated animal is reachable
	if err := repo.AddVaccination(v1.ID, &models.Vaccination{Name: "rabies", AnimalID: rex.ID}); err != nil {
		t.Fatalf("AddVaccination failed: %v", err)
	}
	vaccinations, err := repo.VaccinationsForAnimal(v1.ID, rex.ID)
	if err != nil {
		t.Fatalf("VaccinationsForAnimal failed: %v", err)
	}
	if len(vaccinations) != 1 {
		t.Fatalf("expected 1 vaccination, got %d", len(vaccinations))
	}

	// An animal without a shared rendez-vous is out of reach
	err = repo.AddVaccination(v1.ID, &models.Vaccination{Name: "rabies", AnimalID: milo.ID})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden vaccinating an unreachable animal, got %v", err)
	}
	if _, err := repo.VaccinationsForAnimal(v1.ID, milo.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden listing an unreachable animal, got %v", err)
	}
}
