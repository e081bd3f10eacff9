package config

// Config is the gosolid configuration after layering.
type Config struct {
	LogLevel string        `yaml:"logLevel,omitempty"`
	LogFile  string        `yaml:"logFile,omitempty"`
	Color    *bool         `yaml:"color,omitempty"`
	Audit    AuditConfig   `yaml:"audit,omitempty"`
	Diagram  DiagramConfig `yaml:"diagram,omitempty"`
}

// AuditConfig holds defaults for the audit command.
type AuditConfig struct {
	Filter        string   `yaml:"filter,omitempty"`
	DisabledRules []string `yaml:"disabledRules,omitempty"`
}

// DiagramConfig holds defaults for the diagram command.
type DiagramConfig struct {
	MaxMethodsPerBox *int `yaml:"maxMethodsPerBox,omitempty"`
}

// ColorEnabled reports whether styled output is on; unset means on.
func (c Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// MaxMethods returns the configured method cap for diagram boxes.
func (c Config) MaxMethods() int {
	if c.Diagram.MaxMethodsPerBox == nil {
		return 5
	}
	return *c.Diagram.MaxMethodsPerBox
}
