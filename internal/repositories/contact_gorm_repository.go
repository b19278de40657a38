package repositories

import (
	"fmt"

	"repuestos/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMContactRepository is a GORM implementation of ContactRepository.
type GORMContactRepository struct {
	db *gorm.DB
}

// NewGORMContactRepository creates a new instance of GORMContactRepository.
func NewGORMContactRepository(db *gorm.DB) *GORMContactRepository {
	return &GORMContactRepository{
		db: db,
	}
}

// GetAll retrieves all contact requests, newest first.
func (r *GORMContactRepository) GetAll() ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.db.Order("received_at DESC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all contacts: %w", err)
	}
	return contacts, nil
}

// GetByTicket retrieves a contact request by its ticket number.
func (r *GORMContactRepository) GetByTicket(ticket string) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, "ticket = ?", ticket).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("contact with ticket %s not found", ticket)
		}
		return nil, fmt.Errorf("failed to get contact by ticket %s: %w", ticket, err)
	}
	return &contact, nil
}

// Create creates a new contact request in the database.
func (r *GORMContactRepository) Create(contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if err := r.db.Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}
