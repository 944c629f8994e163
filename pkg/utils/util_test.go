package util

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QR-Code-Tracker/models"
)

func TestGenerateBase64Key_RoundTrips(t *testing.T) {
	encoded, err := GenerateBase64Key(32)
	require.NoError(t, err)

	key, err := DecodeBase64Key(encoded)
	require.NoError(t, err)
	assert.Len(t, key, 32)
}

func TestGenerateBase64Key_RejectsOtherSizes(t *testing.T) {
	_, err := GenerateBase64Key(16)
	assert.Error(t, err)
}

func TestDecodeBase64Key_AcceptsStandardEncoding(t *testing.T) {
	raw := []byte("0123456789abcdef0123456789abcdef")
	key, err := DecodeBase64Key(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, key)
}

func TestDecodeBase64Key_RejectsGarbage(t *testing.T) {
	_, err := DecodeBase64Key("%%%not-base64%%%")
	assert.Error(t, err)
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		p := models.UserRegisterPayload{Username: "u", Email: "e@x.com", Password: "p"}
		assert.Nil(t, ValidateStruct(p))
	})

	t.Run("missing fields", func(t *testing.T) {
		violations := ValidateStruct(models.UserRegisterPayload{})
		require.Len(t, violations, 3)
		assert.Equal(t, "Username", violations[0].Field)
		assert.Equal(t, "required", violations[0].Tag)
	})

	t.Run("blank username", func(t *testing.T) {
		p := models.UserRegisterPayload{Username: "   ", Email: "e@x.com", Password: "p"}
		violations := ValidateStruct(p)
		require.Len(t, violations, 1)
		assert.Equal(t, "notblank", violations[0].Tag)
	})

	t.Run("bad email", func(t *testing.T) {
		p := models.UserLoginPayload{Email: "nope", Password: "p"}
		violations := ValidateStruct(p)
		require.Len(t, violations, 1)
		assert.Equal(t, "Invalid email format.", violations[0].Message)
	})
}
