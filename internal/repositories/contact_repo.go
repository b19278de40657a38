package repositories

import "repuestos/internal/models"

// ContactRepository defines the interface for contact request data access.
type ContactRepository interface {
	GetAll() ([]models.Contact, error)
	GetByTicket(ticket string) (*models.Contact, error)
	Create(contact *models.Contact) error
}
