// Package correct splits user creation into single-purpose collaborators
// that are handed to the orchestrating service at construction time.
package correct

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/olehluchkiv/gosolid/internal/capability"
)

// Validator decides whether user input is acceptable.
type Validator interface {
	ValidateUser(username, email string) bool
}

// Repository persists users.
type Repository interface {
	SaveUser(username, email string)
}

// Mailer notifies new users.
type Mailer interface {
	SendWelcomeEmail(email string)
}

// CreationLogger records that a user was created.
type CreationLogger interface {
	LogUserCreation(username string)
}

// Reporter produces user reports.
type Reporter interface {
	GenerateUserReport(username string)
}

// UserService orchestrates user creation. It owns none of the steps.
type UserService struct {
	validator  Validator
	repository Repository
	mailer     Mailer
	logger     CreationLogger
}

// NewUserService wires the collaborators UserService orchestrates.
func NewUserService(validator Validator, repository Repository, mailer Mailer, logger CreationLogger) *UserService {
	return &UserService{
		validator:  validator,
		repository: repository,
		mailer:     mailer,
		logger:     logger,
	}
}

// CreateUser validates first; nothing is saved, sent or logged for invalid input.
func (s *UserService) CreateUser(username, email string) error {
	if !s.validator.ValidateUser(username, email) {
		return fmt.Errorf("create user %q: %w", username, capability.ErrInvalidInput)
	}

	s.repository.SaveUser(username, email)
	s.mailer.SendWelcomeEmail(email)
	s.logger.LogUserCreation(username)
	return nil
}

// Demo wires console collaborators, creates a user and reports on it.
// Demo creates a user through the split services and prints a report.
func Demo(w io.Writer) error {
	return demo(w, NewConsoleCreationLogger(w))
}

// LoggedDemo is Demo with creation events recorded on logger instead of
// printed. Only the logger changes; UserService is untouched.
func LoggedDemo(logger *slog.Logger) func(w io.Writer) error {
	return func(w io.Writer) error {
		return demo(w, NewSlogCreationLogger(logger))
	}
}

func demo(w io.Writer, logger CreationLogger) error {
	svc := NewUserService(
		UserValidator{},
		NewConsoleRepository(w),
		NewEmailService(w),
		logger,
	)
	if err := svc.CreateUser("john_doe", "john@example.com"); err != nil {
		return err
	}

	var reporter Reporter = NewReportGenerator(w)
	reporter.GenerateUserReport("john_doe")
	return nil
}
