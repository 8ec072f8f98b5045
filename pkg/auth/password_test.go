package auth

import (
	"strings"
	"testing"

	apperrors "ceslar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Run("hash verifies against the password", func(t *testing.T) {
		hash, err := HashPassword("pastor-secret")

		require.NoError(t, err)
		assert.NotEqual(t, "pastor-secret", hash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pastor-secret")))
	})

	t.Run("salts differ", func(t *testing.T) {
		hash1, err1 := HashPassword("same")
		hash2, err2 := HashPassword("same")

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, hash1, hash2)
	})

	t.Run("72 bytes is the limit", func(t *testing.T) {
		_, err := HashPassword(strings.Repeat("a", 72))
		assert.NoError(t, err)

		_, err = HashPassword(strings.Repeat("a", 73))
		assert.Error(t, err)
	})

	t.Run("unicode", func(t *testing.T) {
		hash, err := HashPassword("contraseña🔐")

		require.NoError(t, err)
		assert.NoError(t, CheckPassword("contraseña🔐", hash))
	})
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("CorrectHorse")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  bool
	}{
		{"match", "CorrectHorse", hash, false},
		{"wrong password", "wrong", hash, true},
		{"case sensitive", "correcthorse", hash, true},
		{"empty password", "", hash, true},
		{"invalid hash", "CorrectHorse", "notavalidhash", true},
		{"empty hash", "CorrectHorse", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(tt.password, tt.hash)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		})
	}
}

func BenchmarkCheckPassword(b *testing.B) {
	hash, _ := HashPassword("benchmarkpassword")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CheckPassword("benchmarkpassword", hash)
	}
}
