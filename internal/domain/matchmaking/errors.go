package matchmaking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidUser  = errors.New("invalid user id")
	ErrInvalidLimit = errors.New("invalid limit")
	ErrUnknownUser  = errors.New("unknown user")
	ErrInvalidKey   = errors.New("invalid card variant")
)

// StoreError wraps a failed read from the store. The engine never retries.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store read failed during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Retryable reports that the caller may try the whole operation again.
func (e *StoreError) Retryable() bool {
	return true
}

// IsRetryable reports whether err carries a StoreError.
func IsRetryable(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Retryable()
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

func validateRequest(userID int64, limit int) error {
	if userID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidUser, userID)
	}
	if limit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	return nil
}

func validateKey(k Key) error {
	if k.BaseCardID <= 0 || k.VariantID <= 0 {
		return fmt.Errorf("%w: card %d variant %d", ErrInvalidKey, k.BaseCardID, k.VariantID)
	}
	return nil
}
