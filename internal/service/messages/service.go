package messages

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/fisiovita/clinic-booking/internal/domain"
	messageRepo "github.com/fisiovita/clinic-booking/internal/infra/storage/message"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubmitInput carries a contact form submission
type SubmitInput struct {
	Name      string
	Email     string
	Phone     *string
	Subject   string
	Message   string
	IPAddress *string
}

// Service handles contact form submissions and the admin inbox
type Service struct {
	repo   MessageRepository
	logger Logger
}

// NewService creates a messages service
func NewService(repo MessageRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Submit validates and stores a contact message
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.ContactMessage, error) {
	name := sanitize(input.Name, domain.MaxNameLength)
	email := sanitize(input.Email, domain.MaxEmailLength)
	body := sanitize(input.Message, domain.MaxMessageLength)

	if name == "" || email == "" || body == "" {
		return nil, fmt.Errorf("%w: Submit", ErrMissingFields)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: Submit - %q", ErrInvalidEmail, email)
	}

	msg := &domain.ContactMessage{
		Name:      name,
		Email:     email,
		Subject:   sanitize(input.Subject, domain.MaxSubjectLength),
		Message:   body,
		IPAddress: input.IPAddress,
	}
	if input.Phone != nil {
		phone := sanitize(*input.Phone, domain.MaxPhoneLength)
		if phone != "" {
			msg.Phone = &phone
		}
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		s.logger.Error("Submit: failed to store message: %v", err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: message %d received from %s", created.ID, created.Email)
	return created, nil
}

// List returns contact messages for the admin inbox, newest first
func (s *Service) List(ctx context.Context, onlyUnread bool) ([]*domain.ContactMessage, error) {
	items, err := s.repo.List(ctx, onlyUnread)
	if err != nil {
		s.logger.Error("List: failed to list messages: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return items, nil
}

// MarkRead marks a message as read
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	err := s.repo.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, messageRepo.ErrMessageNotFound) {
			return fmt.Errorf("%w: MarkRead - id %d", ErrMessageNotFound, id)
		}
		s.logger.Error("MarkRead: failed to mark message %d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}
	return nil
}

// sanitize trims, collapses internal whitespace and enforces the length cap
func sanitize(value string, maxLen int) string {
	value = strings.Join(strings.Fields(value), " ")
	if len(value) > maxLen {
		value = value[:maxLen]
	}
	return value
}

// Delete removes a message from the inbox
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, messageRepo.ErrMessageNotFound) {
			return fmt.Errorf("%w: Delete - id %d", ErrMessageNotFound, id)
		}
		s.logger.Error("Delete: failed to delete message %d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: message %d removed", id)
	return nil
}
