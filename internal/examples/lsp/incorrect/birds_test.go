package incorrect

import (
	"bytes"
	"testing"

	"github.com/olehluchkiv/gosolid/internal/capability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOstrichFly_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	err := MakeBirdFly(NewOstrich(&buf))
	require.ErrorIs(t, err, capability.ErrUnsupportedOperation)
	assert.Equal(t, "Ostriches can't fly!", err.Error())
	assert.Empty(t, buf.String())
}

func TestFlyingBirds(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MakeBirdFly(NewBird(&buf)))
	require.NoError(t, MakeBirdFly(NewDuck(&buf)))
	assert.Equal(t, "Flying high in the sky!\nDuck flying!\n", buf.String())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	assert.Equal(t,
		"Flying high in the sky!\n"+
			"Duck flying!\n"+
			"Error: Ostriches can't fly!\n",
		buf.String())
}
