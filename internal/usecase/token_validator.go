package usecase

import (
	"appointment-engine/internal/domain/auth"
	"appointment-engine/internal/domain/user"
	"appointment-engine/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the calling principal.
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*auth.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, err
	}

	return &auth.Principal{
		UserID:     claims.UserID,
		BusinessID: claims.BusinessID,
		Role:       role,
	}, nil
}
