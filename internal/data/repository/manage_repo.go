package repository

import (
	"context"
	"fmt"

	"booking-console/internal/data/entity"
	"booking-console/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ManageRepository interface {
	Create(ctx context.Context, record *entity.ManageBooking) error
	FindByUID(ctx context.Context, uid string) (*entity.ManageBooking, error)
	FindByBookingID(ctx context.Context, bookingID string) (*entity.ManageBooking, error)
}

type manageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewManageRepository(db database.PgxIface, log *zap.Logger) ManageRepository {
	return &manageRepository{
		db:  db,
		log: log.With(zap.String("repository", "manage")),
	}
}

const manageColumns = `uid, booking_id, user_id, type, status, amount, reason, booking_details, created_at`

func scanManage(row pgx.Row) (*entity.ManageBooking, error) {
	var m entity.ManageBooking
	err := row.Scan(
		&m.UID,
		&m.BookingID,
		&m.UserID,
		&m.Type,
		&m.Status,
		&m.Amount,
		&m.Reason,
		&m.BookingDetails,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts the management record. The uid primary key makes retries
// with the same idempotency key a no-op instead of a duplicate.
func (r *manageRepository) Create(ctx context.Context, record *entity.ManageBooking) error {
	query := `
		INSERT INTO manage_booking (uid, booking_id, user_id, type, status, amount, reason, booking_details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (uid) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		record.UID,
		record.BookingID,
		record.UserID,
		record.Type,
		record.Status,
		record.Amount,
		record.Reason,
		record.BookingDetails,
	)

	if err != nil {
		r.log.Error("Failed to create manage record",
			zap.Error(err),
			zap.String("uid", record.UID),
			zap.String("booking_id", record.BookingID),
		)
		return fmt.Errorf("create manage record %s: %w", record.UID, err)
	}

	return nil
}

func (r *manageRepository) FindByUID(ctx context.Context, uid string) (*entity.ManageBooking, error) {
	query := `SELECT ` + manageColumns + ` FROM manage_booking WHERE uid = $1`

	record, err := scanManage(r.db.QueryRow(ctx, query, uid))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find manage record by UID",
			zap.Error(err),
			zap.String("uid", uid),
		)
		return nil, fmt.Errorf("find manage record by UID %s: %w", uid, err)
	}

	return record, nil
}

func (r *manageRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.ManageBooking, error) {
	query := `
		SELECT ` + manageColumns + `
		FROM manage_booking
		WHERE booking_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	record, err := scanManage(r.db.QueryRow(ctx, query, bookingID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find manage record by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find manage record by booking ID %s: %w", bookingID, err)
	}

	return record, nil
}
