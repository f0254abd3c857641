// Package services holds the core operations behind both the HTTP API and
// the console menu: room inventory, booking ledger, review ledger, meal
// catalog and the analytics aggregator. Every service gets its *gorm.DB
// injected through its constructor; nothing here touches global state.
package services

import (
	"errors"
	"fmt"
)

// ErrValidation marks input that fails a domain rule: negative price,
// non-positive capacity, rating out of range, inverted date span. The HTTP
// adapter translates it into a 400 response.
var ErrValidation = errors.New("validation failed")

// ErrNotFound is returned when a referenced record does not exist. Translated
// into a 404 response.
var ErrNotFound = errors.New("not found")

// ErrDuplicate signals a unique-key collision, currently only room numbers.
// It is a validation-class error (errors.Is(err, ErrValidation) holds) but
// the HTTP adapter answers it with 409.
var ErrDuplicate = fmt.Errorf("%w: duplicate", ErrValidation)
