package schedule

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fireMsgs runs cmd, flattening batches, and returns every FireMsg produced.
func fireMsgs(cmd tea.Cmd) []FireMsg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case FireMsg:
		return []FireMsg{msg}
	case tea.BatchMsg:
		var out []FireMsg
		for _, c := range msg {
			out = append(out, fireMsgs(c)...)
		}
		return out
	}
	return nil
}

func TestProgram_FlushDeliversFirstTick(t *testing.T) {
	p := NewProgram()

	n := 0
	p.Every(time.Millisecond, func() { n++ })

	msgs := fireMsgs(p.Flush())
	require.Len(t, msgs, 1)
	assert.True(t, p.Owns(msgs[0]))
	assert.Nil(t, p.Flush())

	next := p.Handle(msgs[0])
	assert.Equal(t, 1, n)
	assert.Len(t, fireMsgs(next), 1)
}

func TestProgram_DropsTicksForStoppedSchedule(t *testing.T) {
	p := NewProgram()

	n := 0
	stop := p.Every(time.Millisecond, func() { n++ })
	inFlight := fireMsgs(p.Flush())
	require.Len(t, inFlight, 1)

	stop()

	assert.Nil(t, p.Handle(inFlight[0]))
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, p.Pending())
}

func TestProgram_StopFromCallbackDoesNotRearm(t *testing.T) {
	p := NewProgram()

	var stop func()
	stop = p.Every(time.Millisecond, func() { stop() })

	msgs := fireMsgs(p.Flush())
	require.Len(t, msgs, 1)

	assert.Empty(t, fireMsgs(p.Handle(msgs[0])))
}

func TestProgram_IgnoresOtherPrograms(t *testing.T) {
	a, b := NewProgram(), NewProgram()

	n := 0
	a.Every(time.Millisecond, func() { n++ })
	b.Every(time.Millisecond, func() { n += 100 })

	msgs := fireMsgs(a.Flush())
	require.Len(t, msgs, 1)

	assert.False(t, b.Owns(msgs[0]))
	assert.Nil(t, b.Handle(msgs[0]))
	assert.Equal(t, 0, n)
}
