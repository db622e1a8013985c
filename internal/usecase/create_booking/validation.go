package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/fisiovita/clinic-booking/internal/domain"
	"github.com/fisiovita/clinic-booking/pkg/types"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest checks presence and format of the submission and returns
// its sanitized form. The date is parsed in loc so it compares against the
// clock's local midnights. Calendar and capacity rules are applied later,
// in admission order.
func validateRequest(req *Request, loc *time.Location) (*admission, error) {
	a := &admission{
		name:    sanitize(req.Name, domain.MaxNameLength),
		phone:   sanitize(req.Phone, domain.MaxPhoneLength),
		service: sanitize(req.ServiceType, domain.MaxServiceLength),
	}

	if a.name == "" || a.phone == "" || a.service == "" ||
		strings.TrimSpace(req.PreferredDate) == "" || strings.TrimSpace(req.PreferredTime) == "" {
		return nil, ErrMissingFields
	}

	date, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(req.PreferredDate), loc)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q", ErrInvalidInput, req.PreferredDate)
	}
	a.date = date

	slot, err := types.NewTimeStringFromString(strings.TrimSpace(req.PreferredTime))
	if err != nil {
		return nil, fmt.Errorf("%w: time %q", ErrInvalidInput, req.PreferredTime)
	}
	a.slot = slot

	if req.Email != nil {
		email := sanitize(*req.Email, domain.MaxEmailLength)
		if email != "" {
			if !emailPattern.MatchString(email) {
				return nil, fmt.Errorf("%w: email %q", ErrInvalidInput, email)
			}
			a.email = &email
		}
	}

	if req.Notes != nil {
		notes := sanitize(*req.Notes, domain.MaxNotesLength)
		if notes != "" {
			a.notes = &notes
		}
	}

	return a, nil
}

// sanitize trims, collapses internal whitespace and enforces the length cap
func sanitize(value string, maxLen int) string {
	value = strings.Join(strings.Fields(value), " ")
	if len(value) > maxLen {
		value = value[:maxLen]
	}
	return value
}
