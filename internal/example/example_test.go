package example

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExample() Example {
	return Example{
		Name:      "isp",
		Principle: ISP,
		IncorrectDemo: func(w io.Writer) error {
			_, err := fmt.Fprintln(w, "bad")
			return err
		},
		CorrectDemo: func(w io.Writer) error {
			_, err := fmt.Fprintln(w, "good")
			return err
		},
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input    string
		expected Variant
	}{
		{"incorrect", Incorrect},
		{"Correct", Correct},
		{"INCORRECT", Incorrect},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseVariant(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParseVariant_Invalid(t *testing.T) {
	_, err := ParseVariant("both")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown variant")
}

func TestPrincipleTitle(t *testing.T) {
	assert.Equal(t, "Liskov Substitution", LSP.Title())
	assert.Equal(t, "XYZ", Principle("XYZ").Title())
}

func TestRunAll_Order(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testExample().RunAll(&buf))
	assert.Equal(t,
		"=== ISP: Interface Segregation (incorrect) ===\nbad\n"+
			"=== ISP: Interface Segregation (correct) ===\ngood\n",
		buf.String())
}

func TestRun_WrapsDemoError(t *testing.T) {
	boom := errors.New("boom")
	ex := testExample()
	ex.CorrectDemo = func(io.Writer) error { return boom }

	err := ex.Run(Correct, io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "example isp (correct)")
}

func TestRun_MissingDemo(t *testing.T) {
	ex := testExample()
	ex.IncorrectDemo = nil
	err := ex.Run(Incorrect, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no incorrect demo")
}

func TestRun_UnknownVariant(t *testing.T) {
	err := testExample().Run(Variant("both"), io.Discard)
	require.Error(t, err)
}

func TestRunWithLogger(t *testing.T) {
	e := testExample()
	var got *slog.Logger
	e.CorrectWithLogger = func(logger *slog.Logger) Demo {
		got = logger
		return func(w io.Writer) error {
			_, err := fmt.Fprintln(w, "logged")
			return err
		}
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var buf bytes.Buffer
	require.NoError(t, e.RunWithLogger(Correct, &buf, logger))
	require.NoError(t, e.RunWithLogger(Incorrect, &buf, logger))
	assert.Equal(t, "logged\nbad\n", buf.String())
	assert.Same(t, logger, got)
}

func TestRunWithLogger_Fallback(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testExample().RunWithLogger(Correct, &buf, slog.Default()))
	assert.Equal(t, "good\n", buf.String())
}
