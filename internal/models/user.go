package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleVendor   UserRole = "vendor"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID              uuid.UUID   `db:"id"`
	FullName        string      `db:"full_name"`
	Email           string      `db:"email"`
	Password        string      `db:"password"`
	Role            UserRole    `db:"role"`
	ProfileImage    string      `db:"profile_image"`
	Phone           string      `db:"phone"`
	City            string      `db:"city"`
	State           string      `db:"state"`
	Country         string      `db:"country"`
	Zip             string      `db:"zip"`
	IsVerified      bool        `db:"is_verified"`
	IsActive        bool        `db:"is_active"`
	SavedVendors    []uuid.UUID `db:"saved_vendors"`
	VerifyCode      string      `db:"verify_code"`
	VerifyCodeExp   time.Time   `db:"verify_code_exp"`
	ResetToken      string      `db:"reset_token"`
	ResetTokenExp   time.Time   `db:"reset_token_exp"`
	CreatedAt       time.Time   `db:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at"`
}
