package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)
	p.Heading("=== LSP ===")
	p.Error("Error: Ostriches can't fly!")
	p.Success("ok")
	p.Muted("quiet")
	p.Line("Duck flying!")

	assert.Equal(t, "=== LSP ===\nError: Ostriches can't fly!\nok\nquiet\nDuck flying!\n", buf.String())
}

func TestNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	New(&buf, true).Heading("plain")
	assert.Equal(t, "plain\n", buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Table([][]string{
		{"NAME", "PRINCIPLE", "SUMMARY"},
		{"srp", "Single Responsibility", "split"},
		{"lsp", "Liskov Substitution", "opt-in"},
	})
	assert.Equal(t,
		"NAME  PRINCIPLE              SUMMARY\n"+
			"srp   Single Responsibility  split\n"+
			"lsp   Liskov Substitution    opt-in\n",
		buf.String())
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Table(nil)
	assert.Empty(t, buf.String())
}
