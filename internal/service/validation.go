package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nurpe/orders-service/internal/model"
)

// ValidateUser applies the field rules every stored user must satisfy,
// whether it arrives over HTTP or from a fixture.
func ValidateUser(user *model.User) error {
	if strings.TrimSpace(user.FirstName) == "" {
		return fmt.Errorf("%w: first_name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(user.LastName) == "" {
		return fmt.Errorf("%w: last_name is required", ErrInvalidInput)
	}
	if user.Phone != nil && utf8.RuneCountInString(*user.Phone) > model.MaxPhoneLength {
		return fmt.Errorf("%w: phone must be at most %d characters", ErrInvalidInput, model.MaxPhoneLength)
	}
	if user.Age != nil && *user.Age < model.MinUserAge {
		return fmt.Errorf("%w: %s: age must be at least %d", ErrConstraintViolation, model.UserAgeCheck, model.MinUserAge)
	}
	return nil
}

func ValidateOrder(order *model.Order) error {
	if strings.TrimSpace(order.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return nil
}
