package auth

import (
	"candidate-assistance/internal/domain/actor"
	"candidate-assistance/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (actor.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (actor.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return actor.Actor{}, err
	}

	role, err := actor.NewRole(claims.Role)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.Actor{ID: claims.ActorID, Role: role}, nil
}
