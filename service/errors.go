package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound id does not resolve to a stored record
	ErrNotFound = errors.New("registro não encontrado")
	// ErrInsufficientStock exit movement exceeds the current quantity
	ErrInsufficientStock = errors.New("Quantidade insuficiente em estoque")
	// ErrDuplicatePayment a payment already exists for the member and period
	ErrDuplicatePayment = errors.New("Já existe pagamento para este membro neste mês")
)

// ValidationError a required field is missing or malformed
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StorageError the persistence layer failed or aborted the transaction
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// storageErr passes domain errors through untouched and wraps everything else.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	var se *StorageError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInsufficientStock), errors.Is(err, ErrDuplicatePayment):
		return err
	case errors.As(err, &ve), errors.As(err, &se):
		return err
	}
	return &StorageError{Op: op, Err: err}
}
