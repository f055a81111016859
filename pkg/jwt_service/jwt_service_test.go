package jwtservice_test

import (
	"testing"
	"time"

	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/pkg/entity"
	jwtservice "github.com/limbo/habitquest/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	s := jwtservice.New("test_secret", time.Hour)
	identity := entity.Identity{ProviderID: "583231", Username: "octocat", Email: "octo@example.com", AvatarURL: "https://a.example.com/1"}
	token, err := s.GenerateToken(identity)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, identity, claims.Identity())
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseTokenRejects(t *testing.T) {
	s := jwtservice.New("test_secret", time.Hour)
	foreign, err := jwtservice.New("other_secret", time.Hour).GenerateToken(entity.Identity{ProviderID: "1"})
	require.NoError(t, err)
	expired, err := jwtservice.New("test_secret", time.Nanosecond).GenerateToken(entity.Identity{ProviderID: "1"})
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	for name, token := range map[string]string{
		"garbage":      "not.a.token",
		"wrong secret": foreign,
		"expired":      expired,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.ParseToken(token)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
		})
	}
}

func TestGenerateTokenNeedsProviderID(t *testing.T) {
	_, err := jwtservice.New("test_secret", 0).GenerateToken(entity.Identity{Username: "anon"})
	assert.Error(t, err)
}
