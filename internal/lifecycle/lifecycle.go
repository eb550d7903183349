// Package lifecycle holds the order status state machine and the expiry
// side effects each transition schedules on the order's stored artifacts.
package lifecycle

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPrinting  Status = "printing"
	StatusCompleted Status = "completed"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// transitions maps a target status to the statuses it may be reached from.
// cancelled is an override allowed from any non-terminal status.
var transitions = map[Status][]Status{
	StatusPrinting:  {StatusPending},
	StatusCompleted: {StatusPrinting},
	StatusDelivered: {StatusCompleted},
	StatusCancelled: {StatusPending, StatusPrinting, StatusCompleted},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPrinting, StatusCompleted, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses accept no further transitions.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[to] {
		if from == allowed {
			return true
		}
	}
	return false
}

// Policy carries the retention windows attached to artifacts when an order
// reaches a terminal status. Proofs keep a longer window than working files
// so a payment dispute can still be answered after delivery.
type Policy struct {
	DeliveredFileTTL         time.Duration
	DeliveredPaymentProofTTL time.Duration
}

// Effects lists exactly the columns a status change is allowed to touch.
// A nil expiry means the column is cleared: no deletion is scheduled.
type Effects struct {
	Status                Status
	FileExpiresAt         *time.Time
	PaymentProofExpiresAt *time.Time
	ResetDeletedFlags     bool
}

// Apply validates the from→to transition and computes its side effects.
// Terminal targets schedule both artifact expiries and reset the deleted
// flags; every other target clears any previously scheduled expiry.
func Apply(from, to Status, now time.Time, p Policy) (Effects, error) {
	if !to.Valid() {
		return Effects{}, ErrInvalidTransition
	}
	if !CanTransition(from, to) {
		return Effects{}, ErrInvalidTransition
	}

	fx := Effects{Status: to}
	if to.Terminal() {
		fileExpiry := now.Add(p.DeliveredFileTTL)
		proofExpiry := now.Add(p.DeliveredPaymentProofTTL)
		fx.FileExpiresAt = &fileExpiry
		fx.PaymentProofExpiresAt = &proofExpiry
		fx.ResetDeletedFlags = true
	}
	return fx, nil
}
