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

var vendorColumns = []string{
	"id", "user_id", "name", "bio", "business_name", "tagline", "description",
	"profile_image", "cover_image", "member_since", "contact_email",
	"contact_phone", "website", "address", "city", "state", "country",
	"rating_average", "rating_count", "is_verified", "featured", "status",
	"created_at", "updated_at",
}

type VendorRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewVendorRepository(db *pgxpool.Pool, logger *zap.Logger) *VendorRepository {
	return &VendorRepository{
		db:     db,
		logger: logger,
	}
}

func scanVendor(row pgx.Row) (*models.Vendor, error) {
	var v models.Vendor
	err := row.Scan(
		&v.ID, &v.UserID, &v.Name, &v.Bio, &v.BusinessName, &v.Tagline,
		&v.Description, &v.ProfileImage, &v.CoverImage, &v.MemberSince,
		&v.ContactEmail, &v.ContactPhone, &v.Website, &v.Address, &v.City,
		&v.State, &v.Country, &v.RatingAverage, &v.RatingCount, &v.IsVerified,
		&v.Featured, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) Create(ctx context.Context, v *models.Vendor) error {
	query := squirrel.Insert("vendors").
		Columns(vendorColumns...).
		Values(
			v.ID, v.UserID, v.Name, v.Bio, v.BusinessName, v.Tagline,
			v.Description, v.ProfileImage, v.CoverImage, v.MemberSince,
			v.ContactEmail, v.ContactPhone, v.Website, v.Address, v.City,
			v.State, v.Country, v.RatingAverage, v.RatingCount, v.IsVerified,
			v.Featured, v.Status, v.CreatedAt, v.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *VendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *VendorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Vendor, error) {
	return r.getBy(ctx, squirrel.Eq{"user_id": userID})
}

func (r *VendorRepository) getBy(ctx context.Context, pred interface{}) (*models.Vendor, error) {
	query := squirrel.Select(vendorColumns...).
		From("vendors").
		Where(pred).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanVendor(r.db.QueryRow(ctx, sql, args...))
}

func (r *VendorRepository) Update(ctx context.Context, v *models.Vendor) error {
	query := squirrel.Update("vendors").
		Set("name", v.Name).
		Set("bio", v.Bio).
		Set("business_name", v.BusinessName).
		Set("tagline", v.Tagline).
		Set("description", v.Description).
		Set("profile_image", v.ProfileImage).
		Set("cover_image", v.CoverImage).
		Set("contact_email", v.ContactEmail).
		Set("contact_phone", v.ContactPhone).
		Set("website", v.Website).
		Set("address", v.Address).
		Set("city", v.City).
		Set("state", v.State).
		Set("country", v.Country).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": v.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// SetVerified marks the vendor verified and activates the profile.
func (r *VendorRepository) SetVerified(ctx context.Context, id uuid.UUID, status models.VendorStatus) error {
	query := squirrel.Update("vendors").
		Set("is_verified", true).
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

func (r *VendorRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.VendorStatus) error {
	query := squirrel.Update("vendors").
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

func (r *VendorRepository) UpdateRating(ctx context.Context, id uuid.UUID, average float64, count int) error {
	query := squirrel.Update("vendors").
		Set("rating_average", average).
		Set("rating_count", count).
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

func (r *VendorRepository) List(ctx context.Context, limit, offset uint64) ([]*models.Vendor, error) {
	query := squirrel.Select(vendorColumns...).
		From("vendors").
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

	var vendors []*models.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}

	return vendors, rows.Err()
}

func (r *VendorRepository) Count(ctx context.Context) (int64, error) {
	return r.countWhere(ctx, nil)
}

func (r *VendorRepository) CountPendingVerification(ctx context.Context) (int64, error) {
	return r.countWhere(ctx, squirrel.Eq{
		"is_verified": false,
		"status":      models.VendorStatusPending,
	})
}

func (r *VendorRepository) countWhere(ctx context.Context, pred interface{}) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("vendors").
		PlaceholderFormat(squirrel.Dollar)
	if pred != nil {
		query = query.Where(pred)
	}

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
