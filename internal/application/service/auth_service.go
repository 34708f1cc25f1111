package service

import (
	"context"

	"github.com/stationops/fuelpos-api/internal/domain/repository"
	"github.com/stationops/fuelpos-api/pkg/apperror"
	"github.com/stationops/fuelpos-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates terminal operators and issues tokens.
type AuthService struct {
	operatorRepo repository.OperatorRepository
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(operatorRepo repository.OperatorRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		operatorRepo: operatorRepo,
		jwtManager:   jwtManager,
	}
}

// TokenPair holds an access token and its refresh token
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login verifies the operator credentials and issues a token pair.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	operator, err := s.operatorRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(operator.ID, operator.Username)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(operator.ID)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	operatorID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	operator, err := s.operatorRepo.GetByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, apperror.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(operator.ID, operator.Username)
	if err != nil {
		return nil, err
	}
	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(operator.ID)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}
