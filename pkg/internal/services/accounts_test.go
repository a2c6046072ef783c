package services

import (
	"testing"

	"github.com/Deepak1230987/meetAI/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	viper.Set("security.jwt_secret", "unit-test-secret")
	viper.Set("security.token_lifetime", 3600)

	account := models.Account{
		BaseModel: models.BaseModel{ID: "account-1"},
		Name:      "Jamie",
		Avatar:    lo.ToPtr("https://example.com/a.png"),
	}

	tk, err := EncodeAccessToken(account)
	require.NoError(t, err)
	require.NotEmpty(t, tk)

	decoded, err := DecodeAccessToken(tk)
	require.NoError(t, err)
	assert.Equal(t, "account-1", decoded.ID)
	assert.Equal(t, "Jamie", decoded.Name)
	if assert.NotNil(t, decoded.Avatar) {
		assert.Equal(t, "https://example.com/a.png", *decoded.Avatar)
	}
}

func TestDecodeAccessTokenRejectsGarbage(t *testing.T) {
	viper.Set("security.jwt_secret", "unit-test-secret")

	_, err := DecodeAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestNewAccountDuplicateEmail(t *testing.T) {
	setupTestSource(t)

	first, err := NewAccount("Jamie", "jamie@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = NewAccount("Imposter", "jamie@example.com", "hunter23")
	require.Error(t, err)
	// The driver detail stays out of the message shown to clients.
	assert.EqualError(t, err, "email already in use")
}

func TestAuthenticateAccount(t *testing.T) {
	setupTestSource(t)

	_, err := NewAccount("Jamie", "jamie@example.com", "hunter22")
	require.NoError(t, err)

	account, err := AuthenticateAccount("jamie@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "Jamie", account.Name)

	_, err = AuthenticateAccount("jamie@example.com", "wrong")
	assert.Error(t, err)
	_, err = AuthenticateAccount("nobody@example.com", "hunter22")
	assert.Error(t, err)
}

func TestDecodeAccessTokenRejectsWrongSecret(t *testing.T) {
	viper.Set("security.jwt_secret", "secret-a")
	viper.Set("security.token_lifetime", 3600)

	tk, err := EncodeAccessToken(models.Account{
		BaseModel: models.BaseModel{ID: "account-2"},
		Name:      "Sam",
	})
	require.NoError(t, err)

	viper.Set("security.jwt_secret", "secret-b")
	_, err = DecodeAccessToken(tk)
	assert.Error(t, err)
}
