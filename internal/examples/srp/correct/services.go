package correct

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// UserValidator accepts a non-empty username and an e-mail containing "@".
type UserValidator struct{}

// ValidateUser implements Validator.
func (UserValidator) ValidateUser(username, email string) bool {
	return username != "" && email != "" && strings.Contains(email, "@")
}

// ConsoleRepository stands in for a database.
type ConsoleRepository struct {
	out io.Writer
}

// NewConsoleRepository returns a repository printing to out.
func NewConsoleRepository(out io.Writer) *ConsoleRepository {
	return &ConsoleRepository{out: out}
}

// SaveUser implements Repository.
func (r *ConsoleRepository) SaveUser(username, email string) {
	fmt.Fprintf(r.out, "Saving user %s to database\n", username)
}

// EmailService sends welcome messages by printing them.
type EmailService struct {
	out io.Writer
}

// NewEmailService returns a mailer printing to out.
func NewEmailService(out io.Writer) *EmailService {
	return &EmailService{out: out}
}

// SendWelcomeEmail implements Mailer.
func (s *EmailService) SendWelcomeEmail(email string) {
	fmt.Fprintf(s.out, "Sending welcome email to %s\n", email)
}

// ConsoleCreationLogger prints a line per created user.
type ConsoleCreationLogger struct {
	out io.Writer
}

// NewConsoleCreationLogger returns a creation logger printing to out.
func NewConsoleCreationLogger(out io.Writer) *ConsoleCreationLogger {
	return &ConsoleCreationLogger{out: out}
}

// LogUserCreation implements CreationLogger.
func (l *ConsoleCreationLogger) LogUserCreation(username string) {
	fmt.Fprintf(l.out, "Logging creation of user %s\n", username)
}

// SlogCreationLogger records user creation as a structured log entry.
type SlogCreationLogger struct {
	logger *slog.Logger
}

// NewSlogCreationLogger returns a creation logger writing to logger.
func NewSlogCreationLogger(logger *slog.Logger) *SlogCreationLogger {
	return &SlogCreationLogger{logger: logger}
}

// LogUserCreation implements CreationLogger.
func (l *SlogCreationLogger) LogUserCreation(username string) {
	l.logger.Info("user created", "username", username)
}

// ReportGenerator produces per-user reports.
type ReportGenerator struct {
	out io.Writer
}

// NewReportGenerator returns a reporter printing to out.
func NewReportGenerator(out io.Writer) *ReportGenerator {
	return &ReportGenerator{out: out}
}

// GenerateUserReport implements Reporter.
func (g *ReportGenerator) GenerateUserReport(username string) {
	fmt.Fprintf(g.out, "Generating report for user %s\n", username)
}
