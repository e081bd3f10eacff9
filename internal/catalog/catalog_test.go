package catalog

import (
	"bytes"
	"io"
	"testing"

	"github.com/olehluchkiv/gosolid/internal/example"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_Order(t *testing.T) {
	assert.Equal(t, []string{"srp", "ocp", "lsp", "isp", "dip"}, Names())
}

func TestLookup(t *testing.T) {
	e, err := Lookup("LSP")
	require.NoError(t, err)
	assert.Equal(t, example.LSP, e.Principle)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("kiss")
	require.ErrorIs(t, err, ErrUnknownExample)
	assert.Contains(t, err.Error(), "valid: srp, ocp, lsp, isp, dip")
}

func TestEveryExampleRuns(t *testing.T) {
	for _, e := range All() {
		t.Run(e.Name, func(t *testing.T) {
			for _, v := range example.Variants {
				var buf bytes.Buffer
				require.NoError(t, e.Run(v, &buf))
				assert.NotEmpty(t, buf.String())
			}
			assert.NotEmpty(t, e.Packages[example.Incorrect])
			assert.NotEmpty(t, e.Packages[example.Correct])
		})
	}
}

func TestCorrectDemosNeverReportErrors(t *testing.T) {
	for _, e := range All() {
		var buf bytes.Buffer
		require.NoError(t, e.Run(example.Correct, &buf))
		assert.NotContains(t, buf.String(), "Error:", e.Name)
	}
}

func TestDemosAreDeterministic(t *testing.T) {
	for _, e := range All() {
		var a, b bytes.Buffer
		require.NoError(t, e.RunAll(&a))
		require.NoError(t, e.RunAll(&b))
		assert.Equal(t, a.String(), b.String())
		require.NoError(t, e.RunAll(io.Discard))
	}
}
