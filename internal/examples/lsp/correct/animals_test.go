package correct

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// penguin is added here only; BirdManager takes it without changes.
type penguin struct {
	Animal
}

func (p *penguin) Run() { fmt.Fprintln(p.out, "Penguin waddling!") }

func TestMakeFly(t *testing.T) {
	var buf bytes.Buffer
	BirdManager{}.MakeFly(NewDuck(&buf))
	assert.Equal(t, "Duck flying!\n", buf.String())
}

func TestMakeRun(t *testing.T) {
	var buf bytes.Buffer
	m := BirdManager{}
	m.MakeRun(NewDuck(&buf))
	m.MakeRun(NewOstrich(&buf))
	m.MakeRun(&penguin{Animal{out: &buf}})
	assert.Equal(t, "Duck running!\nOstrich running fast!\nPenguin waddling!\n", buf.String())
}

func TestCapabilitiesAreOptIn(t *testing.T) {
	var ostrich any = NewOstrich(io.Discard)
	_, canFly := ostrich.(Flyer)
	_, canRun := ostrich.(Runner)
	assert.False(t, canFly)
	assert.True(t, canRun)
}

func TestBaseBehaviorNeverFails(t *testing.T) {
	var buf bytes.Buffer
	p := &penguin{Animal{out: &buf}}
	var c Creature = p
	c.Move()
	c.MakeSound()
	assert.Equal(t, "Moving...\nMaking sound...\n", buf.String())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	assert.Equal(t,
		"Duck flying!\n"+
			"Duck running!\n"+
			"Ostrich running fast!\n"+
			"Moving...\n"+
			"Quack!\n"+
			"Moving...\n"+
			"Boom!\n",
		buf.String())
}
