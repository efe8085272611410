package lookup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachine_Transitions(t *testing.T) {
	tests := []struct {
		name  string
		apply func(m *Machine, gen uint64) bool
		want  State
	}{
		{"succeed", func(m *Machine, gen uint64) bool { return m.Succeed(gen, &Result{Word: "fox"}) }, Success},
		{"suggest", func(m *Machine, gen uint64) bool { return m.Suggest(gen, []string{"fix"}) }, SpellingSuggestions},
		{"fail", func(m *Machine, gen uint64) bool { return m.Fail(gen, errors.New("boom")) }, Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Machine
			assert.Equal(t, Idle, m.Snapshot().State)

			gen := m.Begin("fox")
			assert.Equal(t, Fetching, m.Snapshot().State)
			assert.Equal(t, "fox", m.Snapshot().Word)

			assert.True(t, tt.apply(&m, gen))
			assert.Equal(t, tt.want, m.Snapshot().State)
		})
	}
}

func TestMachine_StaleGenerationIgnored(t *testing.T) {
	var m Machine
	first := m.Begin("fox")
	second := m.Begin("foxes")

	assert.False(t, m.Succeed(first, &Result{Word: "fox"}))
	assert.Equal(t, Fetching, m.Snapshot().State)

	assert.True(t, m.Succeed(second, &Result{Word: "foxes"}))
	snap := m.Snapshot()
	assert.Equal(t, Success, snap.State)
	assert.Equal(t, "foxes", snap.Result.Word)
}

func TestMachine_CompletesOnlyOnce(t *testing.T) {
	var m Machine
	gen := m.Begin("fox")

	assert.True(t, m.Fail(gen, errors.New("boom")))
	assert.False(t, m.Succeed(gen, &Result{}))
	assert.Equal(t, Error, m.Snapshot().State)
}

func TestMachine_ResetInvalidatesInFlight(t *testing.T) {
	var m Machine
	gen := m.Begin("fox")
	m.Reset()

	assert.False(t, m.Succeed(gen, &Result{}))
	snap := m.Snapshot()
	assert.Equal(t, Idle, snap.State)
	assert.Empty(t, snap.Word)
	assert.Greater(t, snap.Generation, gen)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "suggestions", SpellingSuggestions.String())
	assert.Equal(t, "unknown", State(99).String())
}
