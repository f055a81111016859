package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/habitquest/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(identity entity.Identity) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims carry the provider identity. Subject is the provider id.
type JWTClaims struct {
	jwt.RegisteredClaims
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (c *JWTClaims) Identity() entity.Identity {
	return entity.Identity{
		ProviderID: c.Subject,
		Username:   c.Username,
		Email:      c.Email,
		AvatarURL:  c.AvatarURL,
	}
}
