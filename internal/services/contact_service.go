package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"repuestos/internal/models"
	"repuestos/internal/repositories"
	"repuestos/pkg/rabbitmq"

	"github.com/google/uuid"
)

// ContactService handles customer contact requests: it assigns a ticket
// number, persists the request and publishes a contact.created event that
// the notification consumer turns into customer/admin messages.
type ContactService struct {
	contactRepo repositories.ContactRepository
	publisher   rabbitmq.Publisher
}

// NewContactService creates a new ContactService. The publisher may be nil,
// in which case events are skipped (useful in tests and local setups
// without a broker).
func NewContactService(contactRepo repositories.ContactRepository, publisher rabbitmq.Publisher) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		publisher:   publisher,
	}
}

// GetAllContacts retrieves all contact requests.
func (s *ContactService) GetAllContacts() ([]models.Contact, error) {
	return s.contactRepo.GetAll()
}

// CreateContact registers a contact request and publishes the notification
// event. A broker failure is logged, not surfaced: the customer's request
// is already stored and the notification can be recovered later.
func (s *ContactService) CreateContact(contact *models.Contact) (*models.Contact, error) {
	contact.ID = uuid.New().String()
	contact.Ticket = newTicket()
	contact.ReceivedAt = time.Now()

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact in repository: %w", err)
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"ticket":     contact.Ticket,
			"first_name": contact.FirstName,
			"last_name":  contact.LastName,
			"email":      contact.Email,
			"message":    contact.Message,
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal contact event to JSON: %v", err)
		} else if err := s.publisher.Publish("contact.created", body); err != nil {
			log.Printf("Warning: Failed to publish contact created event for ticket %s: %v", contact.Ticket, err)
		} else {
			log.Printf("Successfully published contact created event for ticket %s", contact.Ticket)
		}
	} else {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
	}

	return contact, nil
}

// newTicket builds a short human-readable ticket number, e.g. "TK-9F2C41A7".
func newTicket() string {
	id := uuid.New().String()
	return "TK-" + strings.ToUpper(id[:8])
}
