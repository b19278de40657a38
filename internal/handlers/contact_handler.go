package handlers

import (
	"fmt"
	"log"

	"repuestos/internal/models"
	"repuestos/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles HTTP requests for customer contact requests.
type ContactHandler struct {
	service  *services.ContactService
	validate *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public contact route.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleCreateContact)
}

// RegisterAdminRoutes registers the contact administration routes. Mount
// these behind the auth middleware.
func (h *ContactHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/contacts", h.HandleGetContacts)
}

// HandleCreateContact registers a contact request and returns the assigned
// ticket number.
func (h *ContactHandler) HandleCreateContact(c *fiber.Ctx) error {
	var contact models.Contact
	if err := c.BodyParser(&contact); err != nil {
		log.Printf("Error parsing contact request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(contact); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	created, err := h.service.CreateContact(&contact)
	if err != nil {
		log.Printf("Error creating contact: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register contact request",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Contact request received",
		"ticket":  created.Ticket,
		"contact": created,
	})
}

// HandleGetContacts retrieves all contact requests.
func (h *ContactHandler) HandleGetContacts(c *fiber.Ctx) error {
	contacts, err := h.service.GetAllContacts()
	if err != nil {
		log.Printf("Error getting all contacts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve contacts",
			"error":   err.Error(),
		})
	}
	return c.JSON(contacts)
}
