// util/validation_util.go

package util

import (
	"time"

	campus_errors "github.com/campushub/campus-api/errors"
	"github.com/campushub/campus-api/model"
)

type ValidationUtil struct {
	minMenuDate time.Time
}

// NewValidationUtil creates a validator that rejects menu records
// dated before minMenuDate.
func NewValidationUtil(minMenuDate time.Time) *ValidationUtil {
	return &ValidationUtil{minMenuDate: minMenuDate}
}

// ValidateMenu accepts or rejects one record; nothing is fixed up.
// The first failing check determines the reported error.
func (v *ValidationUtil) ValidateMenu(menu model.CafeteriaMenu) error {
	if menu.CafeteriaID <= 0 {
		return &campus_errors.ValidationError{Field: "cafeteria_id", Reason: "must be positive"}
	}
	if menu.Name == "" {
		return &campus_errors.ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	if menu.TypeLong == "" {
		return &campus_errors.ValidationError{Field: "type_long", Reason: "cannot be empty"}
	}
	if menu.TypeShort == "" {
		return &campus_errors.ValidationError{Field: "type_short", Reason: "cannot be empty"}
	}
	if menu.Date.Before(v.minMenuDate) {
		return &campus_errors.ValidationError{Field: "date", Reason: "before minimum accepted date"}
	}
	return nil
}

// ValidateChatMessage checks that a message is structurally complete
// before its signature is examined.
func (v *ValidationUtil) ValidateChatMessage(message model.ChatMessage) error {
	if message.Text == "" {
		return &campus_errors.ValidationError{Field: "text", Reason: "cannot be empty"}
	}
	if message.Signature == "" {
		return &campus_errors.ValidationError{Field: "signature", Reason: "cannot be empty"}
	}
	return nil
}
