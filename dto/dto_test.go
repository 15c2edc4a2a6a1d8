package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vetcare-app/vetcare-api/models"
)

func TestUserDTOHidesCredentials(t *testing.T) {
	user := models.User{
		ID:       1,
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "$2a$10$secret-hash",
		Role:     models.Role{Name: models.RoleClient},
	}

	out, err := json.Marshal(NewUserDTO(user))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(out), "secret-hash") {
		t.Fatalf("projection leaked the password hash: %s", out)
	}
	if !strings.Contains(string(out), `"role":"client"`) {
		t.Fatalf("projection lost the role name: %s", out)
	}
}

func TestVetAnimalDTOCarriesOwner(t *testing.T) {
	animal := models.Animal{
		ID:      2,
		Name:    "Rex",
		Species: "dog",
		OwnerID: 7,
		Owner:   models.User{ID: 7, Name: "Alice"},
	}

	view := NewVetAnimalDTO(animal)
	if view.OwnerID != 7 || view.OwnerName != "Alice" {
		t.Fatalf("vet view missing owner info: %+v", view)
	}
	if view.Name != "Rex" {
		t.Fatalf("vet view lost animal fields: %+v", view)
	}
}

func TestProductDTOOmitsAvailability(t *testing.T) {
	product := models.Product{ID: 3, Name: "Flea collar", Price: 12.5, Available: false}

	out, err := json.Marshal(NewProductDTO(product))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(out), "available") {
		t.Fatalf("storefront view should not expose the availability flag: %s", out)
	}
}

func TestSliceProjectionsAreEmptyNotNil(t *testing.T) {
	out, err := json.Marshal(NewAnimalDTOs(nil))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != "[]" {
		t.Fatalf("empty projection should encode as [], got %s", out)
	}
}
