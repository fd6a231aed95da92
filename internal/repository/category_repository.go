package repository

import (
	"context"

	"wedconnect/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CategoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCategoryRepository(db *pgxpool.Pool, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	query := squirrel.Insert("categories").
		Columns("id", "name", "created_by", "created_at", "updated_at").
		Values(c.ID, c.Name, c.CreatedBy, c.CreatedAt, c.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	query := squirrel.Select("id", "name", "created_by", "created_at", "updated_at").
		From("categories").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var c models.Category
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	query := squirrel.Select("id", "name", "created_by", "created_at", "updated_at").
		From("categories").
		Where(squirrel.ILike{"name": name}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var c models.Category
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	query := squirrel.Select("id", "name", "created_by", "created_at", "updated_at").
		From("categories").
		OrderBy("name ASC").
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

	var categories []*models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}
