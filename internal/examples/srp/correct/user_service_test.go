package correct

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/olehluchkiv/gosolid/internal/capability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder implements every collaborator and records the call order.
type recorder struct {
	calls []string
	valid bool
}

func (r *recorder) ValidateUser(username, email string) bool {
	r.calls = append(r.calls, "validate")
	if !r.valid {
		return false
	}
	return UserValidator{}.ValidateUser(username, email)
}

func (r *recorder) SaveUser(username, email string) { r.calls = append(r.calls, "save") }
func (r *recorder) SendWelcomeEmail(email string) { r.calls = append(r.calls, "notify") }
func (r *recorder) LogUserCreation(username string) { r.calls = append(r.calls, "log") }

func newRecordedService(r *recorder) *UserService {
	return NewUserService(r, r, r, r)
}

func TestCreateUser_CallOrder(t *testing.T) {
	r := &recorder{valid: true}
	require.NoError(t, newRecordedService(r).CreateUser("john_doe", "john@example.com"))
	assert.Equal(t, []string{"validate", "save", "notify", "log"}, r.calls)
}

func TestCreateUser_InvalidInputHasNoSideEffects(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"empty username", "", "john@example.com"},
		{"empty email", "john_doe", ""},
		{"email without at", "john_doe", "john.example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{valid: true}
			err := newRecordedService(r).CreateUser(tt.username, tt.email)
			require.ErrorIs(t, err, capability.ErrInvalidInput)
			assert.Equal(t, []string{"validate"}, r.calls)
		})
	}
}

func TestUserValidator(t *testing.T) {
	v := UserValidator{}
	assert.True(t, v.ValidateUser("john_doe", "john@example.com"))
	assert.False(t, v.ValidateUser("", "john@example.com"))
	assert.False(t, v.ValidateUser("john_doe", ""))
	assert.False(t, v.ValidateUser("john_doe", "john"))
}

func TestCreateUser_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	svc := NewUserService(UserValidator{}, NewConsoleRepository(&buf), NewEmailService(&buf), NewConsoleCreationLogger(&buf))
	require.NoError(t, svc.CreateUser("john_doe", "john@example.com"))
	assert.Equal(t,
		"Saving user john_doe to database\n"+
			"Sending welcome email to john@example.com\n"+
			"Logging creation of user john_doe\n",
		buf.String())
}

func TestCreateUser_SlogLoggerSubstitution(t *testing.T) {
	var out, logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	svc := NewUserService(UserValidator{}, NewConsoleRepository(&out), NewEmailService(&out), NewSlogCreationLogger(logger))

	require.NoError(t, svc.CreateUser("jane_doe", "jane@example.com"))
	assert.NotContains(t, out.String(), "Logging creation")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &rec))
	assert.Equal(t, "user created", rec["msg"])
	assert.Equal(t, "jane_doe", rec["username"])
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	assert.Equal(t,
		"Saving user john_doe to database\n"+
			"Sending welcome email to john@example.com\n"+
			"Logging creation of user john_doe\n"+
			"Generating report for user john_doe\n",
		buf.String())
}

func TestLoggedDemo(t *testing.T) {
	var buf, logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	require.NoError(t, LoggedDemo(logger)(&buf))
	assert.Equal(t,
		"Saving user john_doe to database\n"+
			"Sending welcome email to john@example.com\n"+
			"Generating report for user john_doe\n",
		buf.String())
	assert.Contains(t, logs.String(), `"username":"john_doe"`)
}
