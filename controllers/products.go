package controllers

import (
	"github.com/gofiber/fiber/v2"

	"fashionstore/models"
)

func (h *Handler) GetProducts(c *fiber.Ctx) error {
	products, err := h.Catalog.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

func (h *Handler) GetProductByID(c *fiber.Ctx) error {
	product, err := h.Catalog.Get(c.Context(), c.Params("product_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

func (h *Handler) CreateProduct(c *fiber.Ctx) error {
	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product, err := h.Catalog.Create(c.Context(), models.Product{
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Image:       in.Image,
		Category:    in.Category,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *Handler) UpdateProduct(c *fiber.Ctx) error {
	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product, err := h.Catalog.Update(c.Context(), models.Product{
		ID:          c.Params("product_id"),
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Image:       in.Image,
		Category:    in.Category,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

func (h *Handler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.Catalog.Delete(c.Context(), c.Params("product_id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
