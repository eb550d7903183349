package services

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"print-order-backend/internal/models"
)

// ErrNoArtifact means the order has no resolvable storage path for the
// requested artifact: nothing to delete.
var ErrNoArtifact = errors.New("no file to delete")

type OrderStore interface {
	GetOrder(orderID uuid.UUID) (*models.Order, error)
	FindExpired(kind models.ArtifactKind, now time.Time) ([]models.Order, error)
	MarkArtifactDeleted(orderID uuid.UUID, kind models.ArtifactKind) error
}

type ObjectStore interface {
	DeleteFile(storagePath string) error
	ResolvePath(storagePath, publicURL string) string
}

// CleanupService removes expired stored artifacts. The object is always
// deleted before the row is flagged: a crash in between leaves a stale row
// pointing at a missing object, never a row claiming a deletion that did
// not happen.
type CleanupService struct {
	store   OrderStore
	storage ObjectStore

	// Now is the sweep's clock; tests override it.
	Now func() time.Time
}

func NewCleanupService(store OrderStore, storage ObjectStore) *CleanupService {
	return &CleanupService{
		store:   store,
		storage: storage,
		Now:     time.Now,
	}
}

type SweepResult struct {
	DeletedFiles         []string
	DeletedPaymentProofs []string
}

// Sweep deletes every expired artifact of both kinds. One order's failure
// is logged and skipped; the sweep always finishes the batch. Re-running
// is harmless: rows already flagged no longer match the expiry query.
func (s *CleanupService) Sweep() (*SweepResult, error) {
	deletedFiles, err := s.sweepKind(models.ArtifactFile)
	if err != nil {
		return nil, err
	}
	deletedProofs, err := s.sweepKind(models.ArtifactPaymentProof)
	if err != nil {
		return nil, err
	}
	return &SweepResult{
		DeletedFiles:         deletedFiles,
		DeletedPaymentProofs: deletedProofs,
	}, nil
}

func (s *CleanupService) sweepKind(kind models.ArtifactKind) ([]string, error) {
	expired, err := s.store.FindExpired(kind, s.Now())
	if err != nil {
		return nil, err
	}

	deleted := make([]string, 0, len(expired))
	for _, order := range expired {
		path := s.resolveArtifactPath(&order, kind)
		if path == "" {
			continue
		}

		if err := s.storage.DeleteFile(path); err != nil {
			log.Printf("cleanup: failed to remove %s %q for order %s: %v", kind, path, order.ID, err)
			continue
		}

		if err := s.store.MarkArtifactDeleted(order.ID, kind); err != nil {
			log.Printf("cleanup: failed to flag %s deleted for order %s: %v", kind, order.ID, err)
			continue
		}

		deleted = append(deleted, order.ID.String())
	}

	return deleted, nil
}

// Purge is the admin-triggered, single-order analogue of the sweep. Unlike
// the sweep it reports failures to the caller instead of skipping.
func (s *CleanupService) Purge(orderID uuid.UUID, kind models.ArtifactKind) error {
	order, err := s.store.GetOrder(orderID)
	if err != nil {
		return err
	}

	path := s.resolveArtifactPath(order, kind)
	if path == "" {
		return ErrNoArtifact
	}

	if err := s.storage.DeleteFile(path); err != nil {
		return err
	}

	return s.store.MarkArtifactDeleted(orderID, kind)
}

func (s *CleanupService) resolveArtifactPath(order *models.Order, kind models.ArtifactKind) string {
	var path, publicURL sql.NullString
	switch kind {
	case models.ArtifactPaymentProof:
		path, publicURL = order.PaymentProofPath, order.PaymentProofURL
	default:
		path, publicURL = order.FilePath, order.FileURL
	}
	return s.storage.ResolvePath(path.String, publicURL.String)
}
