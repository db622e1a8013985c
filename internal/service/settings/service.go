package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fisiovita/clinic-booking/internal/domain"
	settingsRepo "github.com/fisiovita/clinic-booking/internal/infra/storage/settings"
)

// bookingConfigKeys is the fixed key subset the booking engine reads
var bookingConfigKeys = []string{
	domain.SettingWorkStart,
	domain.SettingWorkEnd,
	domain.SettingSlotIntervalMinutes,
	domain.SettingMaxPerSlot,
	domain.SettingHorizonDays,
	domain.SettingEnabledWeekdays,
	domain.SettingBlockedDates,
}

// allowedKeys is the admin-updatable allow list. Anything else in an update
// payload is silently dropped.
var allowedKeys = map[string]bool{
	"hero_title":                      true,
	"hero_subtitle":                   true,
	"hero_image_url":                  true,
	"about_image_url":                 true,
	"site_name":                       true,
	"whatsapp_number":                 true,
	"instagram_url":                   true,
	"facebook_url":                    true,
	"email_contact":                   true,
	"phone_contact":                   true,
	"address":                         true,
	"business_hours":                  true,
	"show_testimonials":               true,
	"show_gallery":                    true,
	"email_notifications_enabled":     true,
	"therapist_name":                  true,
	"therapist_crefito":               true,
	"therapist_bio":                   true,
	domain.SettingWorkStart:           true,
	domain.SettingWorkEnd:             true,
	domain.SettingSlotIntervalMinutes: true,
	domain.SettingMaxPerSlot:          true,
	domain.SettingHorizonDays:         true,
	domain.SettingEnabledWeekdays:     true,
	domain.SettingBlockedDates:        true,
}

// Service reads and updates site settings, and derives the booking
// configuration consumed by the availability and admission flows
type Service struct {
	repo      SettingsRepository
	txManager TransactionManager
	logger    Logger
}

// NewService creates a settings service
func NewService(repo SettingsRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// BookingConfig reads the booking settings subset and derives a validated
// configuration. Missing or malformed values fall back to defaults, so this
// never fails for data reasons, only for storage ones.
func (s *Service) BookingConfig(ctx context.Context) (*domain.BookingConfig, error) {
	raw, err := s.repo.GetByKeys(ctx, bookingConfigKeys)
	if err != nil {
		s.logger.Error("BookingConfig: failed to read settings: %v", err)
		return nil, fmt.Errorf("%w: BookingConfig - repository error: %v", ErrInternal, err)
	}

	return parseBookingConfig(raw), nil
}

// EmailNotificationsEnabled reports whether admission should emit the
// appointment-created event. Defaults to true when the key is absent.
func (s *Service) EmailNotificationsEnabled(ctx context.Context) bool {
	value, err := s.repo.Get(ctx, domain.SettingEmailNotifications)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingNotFound) {
			s.logger.Warn("EmailNotificationsEnabled: failed to read setting, assuming disabled: %v", err)
			return false
		}
		return true
	}
	return isTruthy(value)
}

// ShowTestimonials reports whether public testimonials are enabled
func (s *Service) ShowTestimonials(ctx context.Context) (bool, error) {
	value, err := s.repo.Get(ctx, domain.SettingShowTestimonials)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: ShowTestimonials - repository error: %v", ErrInternal, err)
	}
	return isTruthy(value), nil
}

// All returns every stored setting for the admin dashboard
func (s *Service) All(ctx context.Context) (map[string]string, error) {
	settings, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("All: failed to read settings: %v", err)
		return nil, fmt.Errorf("%w: All - repository error: %v", ErrInternal, err)
	}
	return settings, nil
}

// Update upserts the allow-listed subset of the given settings in a single
// transaction and returns what was actually written. Keys arriving in
// camelCase are normalized to snake_case first.
func (s *Service) Update(ctx context.Context, updates map[string]string) (map[string]string, error) {
	valid := make(map[string]string)
	for key, value := range updates {
		normalized := normalizeKey(key)
		if allowedKeys[normalized] {
			valid[normalized] = strings.TrimSpace(value)
		}
	}

	if len(valid) == 0 {
		return nil, ErrNoValidKeys
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for key, value := range valid {
			if err := s.repo.Set(txCtx, key, value); err != nil {
				return fmt.Errorf("%w: Update - set %s: %w", ErrInternal, key, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Update: failed to update settings: %v", err)
		return nil, err
	}

	s.logger.Info("Update: updated %d settings", len(valid))
	return valid, nil
}

// normalizeKey converts camelCase setting names to snake_case
func normalizeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
