// Package incorrect shows a user service that owns every concern itself.
package incorrect

import (
	"fmt"
	"io"
	"strings"

	"github.com/olehluchkiv/gosolid/internal/capability"
)

// UserService validates, persists, notifies, logs and reports, all in one type.
type UserService struct {
	out io.Writer
}

// NewUserService returns a service writing every side effect to out.
func NewUserService(out io.Writer) *UserService {
	return &UserService{out: out}
}

// CreateUser mixes validation, database, e-mail and logging logic.
func (s *UserService) CreateUser(username, email string) error {
	if username == "" || email == "" {
		return fmt.Errorf("create user: %w", capability.ErrInvalidInput)
	}

	fmt.Fprintf(s.out, "Saving user %s to database\n", username)
	fmt.Fprintf(s.out, "Sending welcome email to %s\n", email)
	fmt.Fprintln(s.out, "Logging user creation")
	return nil
}

// ValidateEmail reports whether email contains "@".
func (s *UserService) ValidateEmail(email string) bool {
	return strings.Contains(email, "@")
}

// GenerateUserReport prints a report line for username.
func (s *UserService) GenerateUserReport(username string) {
	fmt.Fprintf(s.out, "Generating report for user %s\n", username)
}

// Demo creates one user through the all-in-one service.
func Demo(w io.Writer) error {
	svc := NewUserService(w)
	return svc.CreateUser("john_doe", "john@example.com")
}
