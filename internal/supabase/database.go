package supabase

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"print-order-backend/internal/lifecycle"
	"print-order-backend/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

const orderColumns = `id, customer_name, contact, file_name, file_url, file_path,
		file_expires_at, file_deleted, payment_proof_url, payment_proof_path,
		payment_proof_expires_at, payment_proof_deleted, color_mode, copies, pages,
		paper_size, status, estimated_time, notes, created_at`

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var order models.Order
	err := row.Scan(
		&order.ID, &order.CustomerName, &order.Contact, &order.FileName,
		&order.FileURL, &order.FilePath, &order.FileExpiresAt, &order.FileDeleted,
		&order.PaymentProofURL, &order.PaymentProofPath, &order.PaymentProofExpiresAt,
		&order.PaymentProofDeleted, &order.ColorMode, &order.Copies, &order.Pages,
		&order.PaperSize, &order.Status, &order.EstimatedTime, &order.Notes,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (d *DatabaseClient) CreateOrder(o *models.Order) (*models.Order, error) {
	row := d.db.QueryRow(`
		INSERT INTO orders (id, customer_name, contact, file_name, file_url, file_path,
			payment_proof_url, payment_proof_path, color_mode, copies, pages,
			paper_size, status, estimated_time, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING `+orderColumns+`
	`, o.ID, o.CustomerName, o.Contact, o.FileName, o.FileURL, o.FilePath,
		o.PaymentProofURL, o.PaymentProofPath, o.ColorMode, o.Copies, o.Pages,
		o.PaperSize, o.Status, o.EstimatedTime, o.Notes)

	created, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) GetOrder(orderID uuid.UUID) (*models.Order, error) {
	row := d.db.QueryRow(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, orderID)

	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (d *DatabaseClient) ListOrders() ([]models.Order, error) {
	rows, err := d.db.Query(`
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}

	return orders, rows.Err()
}

// UpdateOrderStatus persists the effects computed by the lifecycle package
// in a single statement. The deleted flags are only touched when the
// transition resets them; other updates leave them alone.
func (d *DatabaseClient) UpdateOrderStatus(orderID uuid.UUID, fx lifecycle.Effects) (*models.Order, error) {
	row := d.db.QueryRow(`
		UPDATE orders
		SET status = $1,
			file_expires_at = $2,
			payment_proof_expires_at = $3,
			file_deleted = CASE WHEN $4 THEN FALSE ELSE file_deleted END,
			payment_proof_deleted = CASE WHEN $4 THEN FALSE ELSE payment_proof_deleted END
		WHERE id = $5
		RETURNING `+orderColumns+`
	`, fx.Status, nullTime(fx.FileExpiresAt), nullTime(fx.PaymentProofExpiresAt),
		fx.ResetDeletedFlags, orderID)

	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return order, nil
}

// FindExpired returns orders whose artifact of the given kind is past its
// expiry and has not been deleted yet.
func (d *DatabaseClient) FindExpired(kind models.ArtifactKind, now time.Time) ([]models.Order, error) {
	prefix, err := columnPrefix(kind)
	if err != nil {
		return nil, err
	}

	rows, err := d.db.Query(fmt.Sprintf(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE %s_expires_at < $1 AND %s_deleted = FALSE
	`, prefix, prefix), now)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}

	return orders, rows.Err()
}

// MarkArtifactDeleted clears the artifact's url and path and sets its
// deleted flag. Callers must have removed the stored object first.
func (d *DatabaseClient) MarkArtifactDeleted(orderID uuid.UUID, kind models.ArtifactKind) error {
	prefix, err := columnPrefix(kind)
	if err != nil {
		return err
	}

	result, err := d.db.Exec(fmt.Sprintf(`
		UPDATE orders
		SET %s_url = NULL, %s_path = NULL, %s_deleted = TRUE
		WHERE id = $1
	`, prefix, prefix, prefix), orderID)
	if err != nil {
		return fmt.Errorf("failed to mark %s deleted: %w", kind, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

func columnPrefix(kind models.ArtifactKind) (string, error) {
	switch kind {
	case models.ArtifactFile:
		return "file", nil
	case models.ArtifactPaymentProof:
		return "payment_proof", nil
	default:
		return "", fmt.Errorf("unknown artifact kind: %q", kind)
	}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
