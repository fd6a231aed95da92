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

var userColumns = []string{
	"id", "full_name", "email", "password", "role", "profile_image", "phone",
	"city", "state", "country", "zip", "is_verified", "is_active",
	"saved_vendors", "verify_code", "verify_code_exp", "reset_token",
	"reset_token_exp", "created_at", "updated_at",
}

type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.FullName, &user.Email, &user.Password, &user.Role,
		&user.ProfileImage, &user.Phone, &user.City, &user.State, &user.Country,
		&user.Zip, &user.IsVerified, &user.IsActive, &user.SavedVendors,
		&user.VerifyCode, &user.VerifyCodeExp, &user.ResetToken,
		&user.ResetTokenExp, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := squirrel.Insert("users").
		Columns(userColumns...).
		Values(
			user.ID, user.FullName, user.Email, user.Password, user.Role,
			user.ProfileImage, user.Phone, user.City, user.State, user.Country,
			user.Zip, user.IsVerified, user.IsActive, user.SavedVendors,
			user.VerifyCode, user.VerifyCodeExp, user.ResetToken,
			user.ResetTokenExp, user.CreatedAt, user.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

func (r *UserRepository) GetByResetToken(ctx context.Context, token string) (*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"reset_token": token}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := squirrel.Update("users").
		Set("full_name", user.FullName).
		Set("profile_image", user.ProfileImage).
		Set("phone", user.Phone).
		Set("city", user.City).
		Set("state", user.State).
		Set("country", user.Country).
		Set("zip", user.Zip).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": user.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *UserRepository) SetVerifyCode(ctx context.Context, id uuid.UUID, code string, expiry time.Time) error {
	return r.update(ctx, id, map[string]interface{}{
		"verify_code":     code,
		"verify_code_exp": expiry,
	})
}

func (r *UserRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return r.update(ctx, id, map[string]interface{}{
		"is_verified": true,
		"verify_code": "",
	})
}

func (r *UserRepository) SetResetToken(ctx context.Context, id uuid.UUID, token string, expiry time.Time) error {
	return r.update(ctx, id, map[string]interface{}{
		"reset_token":     token,
		"reset_token_exp": expiry,
	})
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	return r.update(ctx, id, map[string]interface{}{
		"password":    hashedPassword,
		"reset_token": "",
	})
}

func (r *UserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.update(ctx, id, map[string]interface{}{"is_active": active})
}

func (r *UserRepository) SetSavedVendors(ctx context.Context, id uuid.UUID, vendors []uuid.UUID) error {
	return r.update(ctx, id, map[string]interface{}{"saved_vendors": vendors})
}

func (r *UserRepository) update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	query := squirrel.Update("users").
		SetMap(fields).
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

func (r *UserRepository) List(ctx context.Context, limit, offset uint64) ([]*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("users").
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

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *UserRepository) CountByRole(ctx context.Context, role models.UserRole) (int64, error) {
	return r.count(ctx, squirrel.Eq{"role": role})
}

func (r *UserRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, squirrel.GtOrEq{"created_at": since})
}

func (r *UserRepository) count(ctx context.Context, pred interface{}) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("users").
		Where(pred).
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
