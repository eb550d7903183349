package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"print-order-backend/internal/lifecycle"
)

type ColorMode string

const (
	ColorModeBW    ColorMode = "bw"
	ColorModeColor ColorMode = "color"
)

// ArtifactKind selects one of the two stored objects attached to an order:
// the print document itself or the customer's payment proof.
type ArtifactKind string

const (
	ArtifactFile         ArtifactKind = "file"
	ArtifactPaymentProof ArtifactKind = "payment_proof"
)

type Order struct {
	ID                    uuid.UUID
	CustomerName          string
	Contact               string
	FileName              string
	FileURL               sql.NullString
	FilePath              sql.NullString
	FileExpiresAt         sql.NullTime
	FileDeleted           bool
	PaymentProofURL       sql.NullString
	PaymentProofPath      sql.NullString
	PaymentProofExpiresAt sql.NullTime
	PaymentProofDeleted   bool
	ColorMode             ColorMode
	Copies                int
	Pages                 int
	PaperSize             string
	Status                lifecycle.Status
	EstimatedTime         int
	Notes                 sql.NullString
	CreatedAt             time.Time
}

// EstimateMinutes is fixed at creation time: color copies take three
// minutes each, black-and-white two. Later status changes never recompute it.
func EstimateMinutes(copies int, mode ColorMode) int {
	if mode == ColorModeColor {
		return copies * 3
	}
	return copies * 2
}
