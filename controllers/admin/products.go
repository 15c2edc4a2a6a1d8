package admin

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/models"
	"github.com/vetcare-app/vetcare-api/repositories"
	"github.com/vetcare-app/vetcare-api/utils"
)

// GetProducts godoc
// @Summary List all products, available or not
// @Tags admin
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} utils.ErrorResponse
// @Router /admin/products [get]
func GetProducts(c *fiber.Ctx) error {
	repo := repositories.NewAdminRepo(db.DB)
	products, err := repo.Products()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch products",
			Error:   err.Error(),
		})
	}
	return c.JSON(products)
}

// CreateProduct godoc
// @Summary Create a product, multipart with an optional image
// @Tags admin
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.Product
// @Failure 400 {object} utils.ErrorResponse
// @Router /admin/products [post]
func CreateProduct(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid price",
		})
	}

	product := models.Product{
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
		Available:   c.FormValue("available") != "false",
	}

	if file, err := c.FormFile("image"); err == nil {
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to open image",
			})
		}
		defer f.Close()

		publicID := fmt.Sprintf("product_%d", time.Now().UnixNano())
		url, err := utils.UploadToCloudinary(f, publicID, "products")
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to upload image",
				Error:   err.Error(),
			})
		}
		product.ImageURL = url
	}

	repo := repositories.NewAdminRepo(db.DB)
	if err := repo.CreateProduct(&product); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create product",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct godoc
// @Summary Update a product by ID
// @Tags admin
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} utils.ErrorResponse
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product ID",
		})
	}

	updates := new(models.Product)
	if err := c.BodyParser(updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	repo := repositories.NewAdminRepo(db.DB)
	product, err := repo.UpdateProduct(uint(id), *updates)
	if err != nil {
		return utils.RepoError(c, err, "Failed to update product")
	}
	return c.JSON(product)
}

// SetProductAvailability godoc
// @Summary Toggle the availability flag gating vet/client visibility
// @Tags admin
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} utils.ErrorResponse
// @Router /admin/products/{id}/availability [patch]
func SetProductAvailability(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product ID",
		})
	}

	type AvailabilityInput struct {
		Available bool `json:"available"`
	}
	input := new(AvailabilityInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	repo := repositories.NewAdminRepo(db.DB)
	product, err := repo.SetProductAvailability(uint(id), input.Available)
	if err != nil {
		return utils.RepoError(c, err, "Failed to update product availability")
	}
	return c.JSON(product)
}

// DeleteProduct godoc
// @Summary Delete a product by ID
// @Tags admin
// @Param id path int true "Product ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product ID",
		})
	}

	repo := repositories.NewAdminRepo(db.DB)
	if err := repo.DeleteProduct(uint(id)); err != nil {
		return utils.RepoError(c, err, "Failed to delete product")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
