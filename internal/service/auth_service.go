package service

import (
	"CivicReportAPI/ent"
	"CivicReportAPI/internal/config"
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/model"
	"CivicReportAPI/internal/repository"
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AuthService is the identity collaborator: it hands the core a trusted
// {userId, role} pair and nothing more.
type AuthService struct {
	repo      *repository.Repository
	cfg       *config.AppConfig
	validator *validator.Validate
}

func NewAuthService(repo *repository.Repository, cfg *config.AppConfig, validator *validator.Validate) *AuthService {
	return &AuthService{
		repo:      repo,
		cfg:       cfg,
		validator: validator,
	}
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	name := strings.TrimSpace(req.Name)

	passwordHash, err := helper.HashPassword(req.Password)
	if err != nil {
		slog.Error("Failed to hash password", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	u, err := s.repo.User.Create(ctx, name, email, passwordHash)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, helper.NewConflictError("Email is already registered")
		}
		slog.Error("Failed to create user", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	return s.buildAuthResponse(u)
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))

	u, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewUnauthorizedError("Invalid email or password")
		}
		slog.Error("Failed to query user", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	if !helper.CheckPasswordHash(req.Password, u.PasswordHash) {
		return nil, helper.NewUnauthorizedError("Invalid email or password")
	}

	return s.buildAuthResponse(u)
}

// VerifyUser checks the token and re-reads the user so role changes and
// deletions take effect on the next request, not at token expiry.
func (s *AuthService) VerifyUser(ctx context.Context, tokenString string) (*model.UserDTO, error) {
	claims, err := helper.ParseJWT(s.cfg.JWTSecret, tokenString)
	if err != nil {
		return nil, helper.NewUnauthorizedError("")
	}

	u, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewUnauthorizedError("")
		}
		slog.Error("Failed to query user for token verification", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	return &model.UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}, nil
}

func (s *AuthService) buildAuthResponse(u *ent.User) (*model.AuthResponse, error) {
	token, err := helper.GenerateJWT(s.cfg.JWTSecret, s.cfg.JWTExp, u.ID, string(u.Role))
	if err != nil {
		slog.Error("Failed to generate JWT token", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	return &model.AuthResponse{
		Token: token,
		User: model.UserDTO{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  string(u.Role),
		},
	}, nil
}
