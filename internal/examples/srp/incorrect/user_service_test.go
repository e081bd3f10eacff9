package incorrect

import (
	"bytes"
	"testing"

	"github.com/olehluchkiv/gosolid/internal/capability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewUserService(&buf).CreateUser("john_doe", "john@example.com"))
	assert.Equal(t,
		"Saving user john_doe to database\n"+
			"Sending welcome email to john@example.com\n"+
			"Logging user creation\n",
		buf.String())
}

func TestCreateUser_EmptyInput(t *testing.T) {
	for _, tc := range []struct{ username, email string }{
		{"", "john@example.com"},
		{"john_doe", ""},
	} {
		var buf bytes.Buffer
		err := NewUserService(&buf).CreateUser(tc.username, tc.email)
		require.ErrorIs(t, err, capability.ErrInvalidInput)
		assert.Empty(t, buf.String())
	}
}

func TestValidateEmail(t *testing.T) {
	svc := NewUserService(&bytes.Buffer{})
	assert.True(t, svc.ValidateEmail("john@example.com"))
	assert.False(t, svc.ValidateEmail("john.example.com"))
}

func TestGenerateUserReport(t *testing.T) {
	var buf bytes.Buffer
	NewUserService(&buf).GenerateUserReport("john_doe")
	assert.Equal(t, "Generating report for user john_doe\n", buf.String())
}
