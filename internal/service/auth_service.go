// Package service contains business logic for the application.
package service

import (
	"context"

	"forum-api/internal/models"
	"forum-api/pkg/auth"
)

// AuthService handles token issuance.
// Tokens are stateless: there is no refresh mechanism and no server-side
// revocation, only the fixed expiry baked into the token itself.
type AuthService struct {
	tokens auth.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(tokens auth.TokenIssuer) *AuthService {
	return &AuthService{tokens: tokens}
}

// IssueToken signs an access token for the given identity claims.
func (s *AuthService) IssueToken(ctx context.Context, req *models.IssueTokenRequest) (*models.TokenResponse, error) {
	token, err := s.tokens.GenerateToken(req.Email, req.Name)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{Token: token}, nil
}
