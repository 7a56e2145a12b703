package backend

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEventoNotFound = errors.New("evento not found")
	ErrVendaNotFound  = errors.New("venda not found")
)

// APIError carries the sales API's own error message for responses the
// storefront has no specific handling for.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("sales api: %v (status %v)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("sales api: unexpected status %v", e.StatusCode)
}

// PendingSaleError is returned by CriarVenda when the buyer already has
// an unexpired pending venda for the event. The checkout page uses it
// to offer a continue-to-payment shortcut instead of a retry.
type PendingSaleError struct {
	VendaID   string
	ExpiresAt time.Time
	Message   string
}

func (e *PendingSaleError) Error() string {
	return fmt.Sprintf("venda pendente %v: %v", e.VendaID, e.Message)
}
