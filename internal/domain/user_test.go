package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid user",
			username: "rin",
			email:    "rin@example.com",
			password: "long-enough-password",
			wantErr:  nil,
		},
		{
			name:     "empty username",
			username: "",
			email:    "rin@example.com",
			password: "long-enough-password",
			wantErr:  ErrEmptyUsername,
		},
		{
			name:     "empty email",
			username: "rin",
			email:    "",
			password: "long-enough-password",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "malformed email",
			username: "rin",
			email:    "not-an-email",
			password: "long-enough-password",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "password too short",
			username: "rin",
			email:    "rin@example.com",
			password: "short",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "password too long",
			username: "rin",
			email:    "rin@example.com",
			password: strings.Repeat("x", 73),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			user, err := NewUser(tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, user)
			assert.Equal(t, tt.username, user.Username)
			assert.Equal(t, tt.email, user.Email)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestUserValidateLoadedUser(t *testing.T) {
	t.Parallel()

	// A user loaded from storage has a hashed password and no plaintext one.
	user, err := NewUser("rin", "rin@example.com", "long-enough-password")
	require.NoError(t, err)

	user.Password = ""
	user.HashedPassword = "$2a$10$abcdefghijklmnopqrstuv"
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}
