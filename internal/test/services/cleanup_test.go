package services_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"print-order-backend/internal/models"
	"print-order-backend/internal/services"
	"print-order-backend/internal/supabase"
)

type fakeStore struct {
	orders map[uuid.UUID]*models.Order
}

func newFakeStore(orders ...*models.Order) *fakeStore {
	s := &fakeStore{orders: make(map[uuid.UUID]*models.Order)}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	return s
}

func (s *fakeStore) GetOrder(orderID uuid.UUID) (*models.Order, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return nil, supabase.ErrOrderNotFound
	}
	copied := *o
	return &copied, nil
}

func (s *fakeStore) FindExpired(kind models.ArtifactKind, now time.Time) ([]models.Order, error) {
	var expired []models.Order
	for _, o := range s.orders {
		var expiresAt sql.NullTime
		var deleted bool
		if kind == models.ArtifactPaymentProof {
			expiresAt, deleted = o.PaymentProofExpiresAt, o.PaymentProofDeleted
		} else {
			expiresAt, deleted = o.FileExpiresAt, o.FileDeleted
		}
		if expiresAt.Valid && expiresAt.Time.Before(now) && !deleted {
			expired = append(expired, *o)
		}
	}
	return expired, nil
}

func (s *fakeStore) MarkArtifactDeleted(orderID uuid.UUID, kind models.ArtifactKind) error {
	o, ok := s.orders[orderID]
	if !ok {
		return supabase.ErrOrderNotFound
	}
	if kind == models.ArtifactPaymentProof {
		o.PaymentProofURL = sql.NullString{}
		o.PaymentProofPath = sql.NullString{}
		o.PaymentProofDeleted = true
	} else {
		o.FileURL = sql.NullString{}
		o.FilePath = sql.NullString{}
		o.FileDeleted = true
	}
	return nil
}

type fakeStorage struct {
	deleted  []string
	failPath string
}

func (s *fakeStorage) DeleteFile(storagePath string) error {
	if storagePath == s.failPath {
		return errors.New("storage unavailable")
	}
	s.deleted = append(s.deleted, storagePath)
	return nil
}

func (s *fakeStorage) ResolvePath(storagePath, publicURL string) string {
	if storagePath != "" {
		return storagePath
	}
	return supabase.PathFromPublicURL(publicURL, "documents")
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func nullPast(now time.Time) sql.NullTime {
	return sql.NullTime{Time: now.Add(-time.Minute), Valid: true}
}

func nullFuture(now time.Time) sql.NullTime {
	return sql.NullTime{Time: now.Add(time.Hour), Valid: true}
}

func TestSweep_DeletesExpiredFileOnly(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order := &models.Order{
		ID:                    uuid.New(),
		FilePath:              nullStr("123_report.pdf"),
		FileURL:               nullStr("https://x.supabase.co/storage/v1/object/public/documents/123_report.pdf"),
		FileExpiresAt:         nullPast(now),
		PaymentProofPath:      nullStr("123_proof.pdf"),
		PaymentProofExpiresAt: nullFuture(now),
	}
	store := newFakeStore(order)
	storage := &fakeStorage{}
	svc := services.NewCleanupService(store, storage)
	svc.Now = func() time.Time { return now }

	result, err := svc.Sweep()
	require.NoError(t, err)

	assert.Equal(t, []string{order.ID.String()}, result.DeletedFiles)
	assert.Empty(t, result.DeletedPaymentProofs)
	assert.Equal(t, []string{"123_report.pdf"}, storage.deleted)

	// Row flagged, urls cleared; proof untouched until its own TTL elapses.
	updated, _ := store.GetOrder(order.ID)
	assert.True(t, updated.FileDeleted)
	assert.False(t, updated.FileURL.Valid)
	assert.False(t, updated.FilePath.Valid)
	assert.False(t, updated.PaymentProofDeleted)
	assert.True(t, updated.PaymentProofPath.Valid)
}

func TestSweep_Idempotent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order := &models.Order{
		ID:            uuid.New(),
		FilePath:      nullStr("a.pdf"),
		FileExpiresAt: nullPast(now),
	}
	store := newFakeStore(order)
	storage := &fakeStorage{}
	svc := services.NewCleanupService(store, storage)
	svc.Now = func() time.Time { return now }

	first, err := svc.Sweep()
	require.NoError(t, err)
	require.Len(t, first.DeletedFiles, 1)

	second, err := svc.Sweep()
	require.NoError(t, err)
	assert.Empty(t, second.DeletedFiles)
	assert.Len(t, storage.deleted, 1)
}

func TestSweep_StorageFailureSkipsOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	failing := &models.Order{
		ID:            uuid.New(),
		FilePath:      nullStr("broken.pdf"),
		FileExpiresAt: nullPast(now),
	}
	healthy := &models.Order{
		ID:            uuid.New(),
		FilePath:      nullStr("fine.pdf"),
		FileExpiresAt: nullPast(now),
	}
	store := newFakeStore(failing, healthy)
	storage := &fakeStorage{failPath: "broken.pdf"}
	svc := services.NewCleanupService(store, storage)
	svc.Now = func() time.Time { return now }

	result, err := svc.Sweep()
	require.NoError(t, err)

	// The failing order is skipped with its row untouched; the rest of the
	// batch still completes.
	assert.Equal(t, []string{healthy.ID.String()}, result.DeletedFiles)
	skipped, _ := store.GetOrder(failing.ID)
	assert.False(t, skipped.FileDeleted)
	assert.True(t, skipped.FilePath.Valid)
}

func TestSweep_ResolvesPathFromPublicURL(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order := &models.Order{
		ID:            uuid.New(),
		FileURL:       nullStr("https://x.supabase.co/storage/v1/object/public/documents/legacy%20doc.pdf"),
		FileExpiresAt: nullPast(now),
	}
	store := newFakeStore(order)
	storage := &fakeStorage{}
	svc := services.NewCleanupService(store, storage)
	svc.Now = func() time.Time { return now }

	result, err := svc.Sweep()
	require.NoError(t, err)

	assert.Equal(t, []string{order.ID.String()}, result.DeletedFiles)
	assert.Equal(t, []string{"legacy doc.pdf"}, storage.deleted)
}

func TestSweep_SkipsUnresolvablePath(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order := &models.Order{
		ID:            uuid.New(),
		FileExpiresAt: nullPast(now),
	}
	store := newFakeStore(order)
	storage := &fakeStorage{}
	svc := services.NewCleanupService(store, storage)
	svc.Now = func() time.Time { return now }

	result, err := svc.Sweep()
	require.NoError(t, err)

	assert.Empty(t, result.DeletedFiles)
	assert.Empty(t, storage.deleted)
}

func TestPurge_DeletesSelectedArtifact(t *testing.T) {
	order := &models.Order{
		ID:               uuid.New(),
		FilePath:         nullStr("doc.pdf"),
		PaymentProofPath: nullStr("proof.jpg"),
	}
	store := newFakeStore(order)
	storage := &fakeStorage{}
	svc := services.NewCleanupService(store, storage)

	err := svc.Purge(order.ID, models.ArtifactPaymentProof)
	require.NoError(t, err)

	assert.Equal(t, []string{"proof.jpg"}, storage.deleted)
	updated, _ := store.GetOrder(order.ID)
	assert.True(t, updated.PaymentProofDeleted)
	assert.False(t, updated.PaymentProofPath.Valid)
	assert.False(t, updated.FileDeleted)
	assert.True(t, updated.FilePath.Valid)
}

func TestPurge_NoArtifact(t *testing.T) {
	order := &models.Order{ID: uuid.New()}
	store := newFakeStore(order)
	svc := services.NewCleanupService(store, &fakeStorage{})

	err := svc.Purge(order.ID, models.ArtifactFile)
	assert.ErrorIs(t, err, services.ErrNoArtifact)

	unchanged, _ := store.GetOrder(order.ID)
	assert.False(t, unchanged.FileDeleted)
}

func TestPurge_UnknownOrder(t *testing.T) {
	svc := services.NewCleanupService(newFakeStore(), &fakeStorage{})

	err := svc.Purge(uuid.New(), models.ArtifactFile)
	assert.ErrorIs(t, err, supabase.ErrOrderNotFound)
}

func TestPurge_StorageFailureLeavesRowUnchanged(t *testing.T) {
	order := &models.Order{
		ID:       uuid.New(),
		FilePath: nullStr("doc.pdf"),
	}
	store := newFakeStore(order)
	storage := &fakeStorage{failPath: "doc.pdf"}
	svc := services.NewCleanupService(store, storage)

	err := svc.Purge(order.ID, models.ArtifactFile)
	require.Error(t, err)

	unchanged, _ := store.GetOrder(order.ID)
	assert.False(t, unchanged.FileDeleted)
	assert.True(t, unchanged.FilePath.Valid)
}
