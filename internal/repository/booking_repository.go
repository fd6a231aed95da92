package repository

import (
	"context"
	"time"

	"wedconnect/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var bookingColumns = []string{
	"id", "vendor_id", "vendor_name", "vendor_email", "customer_id",
	"customer_name", "customer_email", "listing_id", "service_title", "date",
	"message", "amount", "status", "payment_status", "payment_intent_id",
	"created_at", "updated_at",
}

type BookingRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBookingRepository(db *pgxpool.Pool, logger *zap.Logger) *BookingRepository {
	return &BookingRepository{
		db:     db,
		logger: logger,
	}
}

func scanBooking(row pgx.Row) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.VendorID, &b.VendorName, &b.VendorEmail, &b.CustomerID,
		&b.CustomerName, &b.CustomerEmail, &b.ListingID, &b.ServiceTitle,
		&b.Date, &b.Message, &b.Amount, &b.Status, &b.PaymentStatus,
		&b.PaymentIntentID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	query := squirrel.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			b.ID, b.VendorID, b.VendorName, b.VendorEmail, b.CustomerID,
			b.CustomerName, b.CustomerEmail, b.ListingID, b.ServiceTitle,
			b.Date, b.Message, b.Amount, b.Status, b.PaymentStatus,
			b.PaymentIntentID, b.CreatedAt, b.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := squirrel.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanBooking(r.db.QueryRow(ctx, sql, args...))
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Booking, error) {
	return r.listWhere(ctx, squirrel.Eq{"customer_id": customerID}, 0)
}

func (r *BookingRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.Booking, error) {
	return r.listWhere(ctx, squirrel.Eq{"vendor_id": vendorID}, 0)
}

// ListRecent returns the newest bookings across the platform (admin overview).
func (r *BookingRepository) ListRecent(ctx context.Context, limit uint64) ([]*models.Booking, error) {
	return r.listWhere(ctx, nil, limit)
}

// List returns one page of all bookings, newest first (admin listing).
func (r *BookingRepository) List(ctx context.Context, limit, offset uint64) ([]*models.Booking, error) {
	query := squirrel.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *BookingRepository) listWhere(ctx context.Context, pred interface{}, limit uint64) ([]*models.Booking, error) {
	query := squirrel.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if pred != nil {
		query = query.Where(pred)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error {
	query := squirrel.Update("bookings").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("bookings").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// SumPaidSince totals the amounts of PAID bookings created at or after the
// given time (month-to-date revenue on the admin overview).
func (r *BookingRepository) SumPaidSince(ctx context.Context, since time.Time) (float64, error) {
	query := squirrel.Select("COALESCE(SUM(amount), 0)").
		From("bookings").
		Where(squirrel.Eq{"payment_status": models.PaymentStatusPaid}).
		Where(squirrel.GtOrEq{"created_at": since}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var total float64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
