package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nurpe/orders-service/internal/repository"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrConstraintViolation = errors.New("constraint violation")
)

const (
	KindNotFound            = "not_found"
	KindInvalidInput        = "invalid_input"
	KindConstraintViolation = "constraint_violation"
	KindInternal            = "internal"
)

// Kind names the failure class of err for API responses.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrConstraintViolation):
		return KindConstraintViolation
	default:
		return KindInternal
	}
}

func notFound(entity string, id uint) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	var constraintErr *repository.ConstraintError
	if errors.As(err, &constraintErr) {
		return fmt.Errorf("%w: %s", ErrConstraintViolation, constraintErr.Error())
	}
	return err
}

// lookup maps a missing row to ErrNotFound for the given entity.
func lookup(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity, id)
	}
	return translate(err)
}
