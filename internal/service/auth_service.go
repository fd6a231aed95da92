package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"wedconnect/internal/dto"
	"wedconnect/internal/models"
	"wedconnect/internal/repository"
	"wedconnect/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidCode        = errors.New("invalid or expired verification code")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

const verifyCodeTTL = 15 * time.Minute
const resetTokenTTL = 1 * time.Hour

type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *auth.JWTManager
	email      *EmailService
	logger     *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, jwtManager *auth.JWTManager, email *EmailService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		email:      email,
		logger:     logger,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	existingUser, _ := s.userRepo.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := models.RoleCustomer
	if req.Role == string(models.RoleVendor) {
		role = models.RoleVendor
	}

	code, err := generateVerifyCode()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:            uuid.New(),
		FullName:      req.FullName,
		Email:         req.Email,
		Password:      hashedPassword,
		Role:          role,
		IsActive:      true,
		SavedVendors:  []uuid.UUID{},
		VerifyCode:    code,
		VerifyCodeExp: now.Add(verifyCodeTTL),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.email.SendVerificationCode(ctx, user.Email, code, int(verifyCodeTTL.Minutes())); err != nil {
		// Registration succeeds even if the mail provider is down; the
		// code can be re-sent later.
		s.logger.Error("Failed to send verification email", zap.Error(err))
	}

	return s.tokensFor(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	return s.tokensFor(user)
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtManager.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	return s.tokensFor(user)
}

// VerifyEmail checks the 6-digit code sent at registration.
func (s *AuthService) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return ErrUserNotFound
	}

	if user.VerifyCode == "" || user.VerifyCode != req.Code {
		return ErrInvalidCode
	}
	if time.Now().After(user.VerifyCodeExp) {
		return ErrInvalidCode
	}

	return s.userRepo.MarkVerified(ctx, user.ID)
}

func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return ErrUserNotFound
	}
	if user.IsVerified {
		return nil
	}

	code, err := generateVerifyCode()
	if err != nil {
		return err
	}

	if err := s.userRepo.SetVerifyCode(ctx, user.ID, code, time.Now().Add(verifyCodeTTL)); err != nil {
		return err
	}

	return s.email.SendVerificationCode(ctx, user.Email, code, int(verifyCodeTTL.Minutes()))
}

// ForgotPassword issues a reset token and mails it. Unknown emails return
// nil so the endpoint does not leak which addresses are registered.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Info("Password reset requested for unknown email")
		return nil
	}

	token := uuid.NewString()
	if err := s.userRepo.SetResetToken(ctx, user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return err
	}

	return s.email.SendPasswordReset(ctx, user.Email, token)
}

func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	user, err := s.userRepo.GetByResetToken(ctx, req.Token)
	if err != nil {
		return ErrInvalidResetToken
	}
	if user.ResetToken == "" || time.Now().After(user.ResetTokenExp) {
		return ErrInvalidResetToken
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword)
}

func (s *AuthService) tokensFor(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwtManager.GetTokenDuration().Seconds()),
		User:         toUserResponse(user),
	}, nil
}

func generateVerifyCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
