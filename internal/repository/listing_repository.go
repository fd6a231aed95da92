package repository

import (
	"context"
	"encoding/json"
	"time"

	"wedconnect/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var listingColumns = []string{
	"id", "vendor_id", "category_id", "title", "description", "expertise",
	"duration", "staff", "packages", "main_image", "gallery", "address",
	"city", "state", "country", "lat", "lng", "min_price", "max_price",
	"reviews", "total_rating", "view_count", "featured", "status",
	"created_at", "updated_at",
}

// ListingFilter describes the public catalogue filters. Nil/zero fields are
// not applied. Filtered listings are always restricted to ACTIVE status.
type ListingFilter struct {
	CategoryID *uuid.UUID
	City       string
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
	Limit      uint64
	Offset     uint64
}

type ListingRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewListingRepository(db *pgxpool.Pool, logger *zap.Logger) *ListingRepository {
	return &ListingRepository{
		db:     db,
		logger: logger,
	}
}

func scanListing(row pgx.Row) (*models.Listing, error) {
	var l models.Listing
	var packagesJSON, reviewsJSON []byte
	err := row.Scan(
		&l.ID, &l.VendorID, &l.CategoryID, &l.Title, &l.Description,
		&l.Expertise, &l.Duration, &l.Staff, &packagesJSON, &l.MainImage,
		&l.Gallery, &l.Address, &l.City, &l.State, &l.Country, &l.Lat, &l.Lng,
		&l.MinPrice, &l.MaxPrice, &reviewsJSON, &l.TotalRating, &l.ViewCount,
		&l.Featured, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(packagesJSON) > 0 {
		if err := json.Unmarshal(packagesJSON, &l.Packages); err != nil {
			return nil, err
		}
	}
	if len(reviewsJSON) > 0 {
		if err := json.Unmarshal(reviewsJSON, &l.Reviews); err != nil {
			return nil, err
		}
	}

	return &l, nil
}

func (r *ListingRepository) Create(ctx context.Context, l *models.Listing) error {
	packagesJSON, err := json.Marshal(l.Packages)
	if err != nil {
		return err
	}
	reviewsJSON, err := json.Marshal(l.Reviews)
	if err != nil {
		return err
	}

	query := squirrel.Insert("listings").
		Columns(listingColumns...).
		Values(
			l.ID, l.VendorID, l.CategoryID, l.Title, l.Description, l.Expertise,
			l.Duration, l.Staff, packagesJSON, l.MainImage, l.Gallery,
			l.Address, l.City, l.State, l.Country, l.Lat, l.Lng, l.MinPrice,
			l.MaxPrice, reviewsJSON, l.TotalRating, l.ViewCount, l.Featured,
			l.Status, l.CreatedAt, l.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	query := squirrel.Select(listingColumns...).
		From("listings").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanListing(r.db.QueryRow(ctx, sql, args...))
}

func (r *ListingRepository) Update(ctx context.Context, l *models.Listing) error {
	packagesJSON, err := json.Marshal(l.Packages)
	if err != nil {
		return err
	}

	query := squirrel.Update("listings").
		Set("category_id", l.CategoryID).
		Set("title", l.Title).
		Set("description", l.Description).
		Set("expertise", l.Expertise).
		Set("duration", l.Duration).
		Set("staff", l.Staff).
		Set("packages", packagesJSON).
		Set("main_image", l.MainImage).
		Set("gallery", l.Gallery).
		Set("address", l.Address).
		Set("city", l.City).
		Set("state", l.State).
		Set("country", l.Country).
		Set("lat", l.Lat).
		Set("lng", l.Lng).
		Set("min_price", l.MinPrice).
		Set("max_price", l.MaxPrice).
		Set("status", l.Status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": l.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// buildCatalogueQuery translates a ListingFilter into the catalogue SELECT.
// Kept as a free function so the translation is testable without a database.
func buildCatalogueQuery(columns []string, f ListingFilter) squirrel.SelectBuilder {
	query := squirrel.Select(columns...).
		From("listings").
		Where(squirrel.Eq{"status": models.ListingStatusActive}).
		PlaceholderFormat(squirrel.Dollar)

	if f.CategoryID != nil {
		query = query.Where(squirrel.Eq{"category_id": *f.CategoryID})
	}
	if f.City != "" {
		query = query.Where(squirrel.ILike{"city": "%" + f.City + "%"})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		})
	}
	if f.MinPrice != nil {
		query = query.Where(squirrel.GtOrEq{"min_price": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		query = query.Where(squirrel.LtOrEq{"min_price": *f.MaxPrice})
	}

	return query
}

// List returns one catalogue page, featured listings first, newest first.
func (r *ListingRepository) List(ctx context.Context, f ListingFilter) ([]*models.Listing, error) {
	query := buildCatalogueQuery(listingColumns, f).
		OrderBy("featured DESC", "created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryListings(ctx, sql, args)
}

// CountFiltered returns the catalogue total for the same filter, ignoring
// pagination.
func (r *ListingRepository) CountFiltered(ctx context.Context, f ListingFilter) (int64, error) {
	query := buildCatalogueQuery([]string{"COUNT(*)"}, f)

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

// ListActive returns every ACTIVE listing. This is the candidate set for
// recommendation matching; no further filtering happens here.
func (r *ListingRepository) ListActive(ctx context.Context) ([]*models.Listing, error) {
	query := squirrel.Select(listingColumns...).
		From("listings").
		Where(squirrel.Eq{"status": models.ListingStatusActive}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryListings(ctx, sql, args)
}

func (r *ListingRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.Listing, error) {
	query := squirrel.Select(listingColumns...).
		From("listings").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		Where(squirrel.NotEq{"status": models.ListingStatusDeleted}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryListings(ctx, sql, args)
}

func (r *ListingRepository) queryListings(ctx context.Context, sql string, args []interface{}) ([]*models.Listing, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

func (r *ListingRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.ListingStatus) error {
	query := squirrel.Update("listings").
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

func (r *ListingRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Update("listings").
		Set("view_count", squirrel.Expr("view_count + 1")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ListingRepository) UpdateReviews(ctx context.Context, id uuid.UUID, reviews []models.Review, totalRating float64) error {
	reviewsJSON, err := json.Marshal(reviews)
	if err != nil {
		return err
	}

	query := squirrel.Update("listings").
		Set("reviews", reviewsJSON).
		Set("total_rating", totalRating).
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

func (r *ListingRepository) Count(ctx context.Context) (int64, error) {
	return r.countWhere(ctx, nil)
}

func (r *ListingRepository) CountByStatus(ctx context.Context, status models.ListingStatus) (int64, error) {
	return r.countWhere(ctx, squirrel.Eq{"status": status})
}

func (r *ListingRepository) countWhere(ctx context.Context, pred interface{}) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("listings").
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
