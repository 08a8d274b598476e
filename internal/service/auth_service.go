package service

import (
	"errors"
	"time"

	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/config"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/model"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/repository"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/pkg/jwt"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrSessionReplaced    = errors.New("session expired (logged in elsewhere)")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type AuthService interface {
	Login(req *model.LoginRequest) (*LoginResponse, error)
	ResetPassword(req *model.ResetPasswordRequest) error
	ValidateToken(tokenString string) (*model.User, error)
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
}

func NewAuthService(userRepo repository.UserRepository, jwtCfg config.JWTConfig) AuthService {
	return &authService{userRepo: userRepo, jwtCfg: jwtCfg}
}

func (s *authService) Login(req *model.LoginRequest) (*LoginResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	// Single session: a fresh token version invalidates earlier tokens.
	user.TokenVersion = uuid.New().String()
	if err := s.userRepo.Update(user); err != nil {
		return nil, errors.New("failed to update session")
	}

	token, err := jwt.GenerateToken(
		user.ID, user.Email, user.FullName, user.Role, user.TokenVersion,
		s.jwtCfg.Secret, time.Duration(s.jwtCfg.ExpiryHours)*time.Hour,
	)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{Token: token, User: *user}, nil
}

func (s *authService) ResetPassword(req *model.ResetPasswordRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return ErrInvalidCredentials
	}
	if !user.CheckPassword(req.OldPassword) {
		return ErrWrongPassword
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		return errors.New("failed to hash new password")
	}
	return s.userRepo.Update(user)
}

func (s *authService) ValidateToken(tokenString string) (*model.User, error) {
	claims, err := jwt.ValidateToken(tokenString, s.jwtCfg.Secret)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, jwt.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, ErrSessionReplaced
	}
	return user, nil
}
