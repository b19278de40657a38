package repositories

import (
	"fmt"
	"sync"

	"repuestos/internal/models"

	"github.com/google/uuid"
)

// MockContactRepository is an in-memory implementation of ContactRepository.
type MockContactRepository struct {
	contacts map[string]models.Contact
	mu       sync.RWMutex
}

// NewMockContactRepository creates a new instance of MockContactRepository.
func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{
		contacts: make(map[string]models.Contact),
	}
}

// GetAll returns all contact requests.
func (r *MockContactRepository) GetAll() ([]models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contactList := make([]models.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		contactList = append(contactList, c)
	}
	return contactList, nil
}

// GetByTicket returns a contact request by its ticket number.
func (r *MockContactRepository) GetByTicket(ticket string) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.contacts {
		if c.Ticket == ticket {
			contact := c
			return &contact, nil
		}
	}
	return nil, fmt.Errorf("contact with ticket %s not found", ticket)
}

// Create adds a new contact request.
func (r *MockContactRepository) Create(contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	r.contacts[contact.ID] = *contact
	return nil
}
