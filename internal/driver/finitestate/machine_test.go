package finitestate

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverMachine(t *testing.T) {
	t.Parallel()

	// setup creates a new state machine for each test
	setup := func() Machine {
		handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})
		machine, err := New(handler)
		require.NoError(t, err)
		return machine
	}

	t.Run("starts in Init", func(t *testing.T) {
		assert.Equal(t, StateInit, setup().GetState())
	})

	t.Run("restart cycles", func(t *testing.T) {
		machine := setup()

		transitions := []string{
			StateRunning,
			StateRestarting,
			StateRunning,
			StateRestarting,
			StateRunning,
			StateShuttingDown,
		}
		for _, state := range transitions {
			require.NoError(t, machine.Transition(state), "Failed to transition to %s", state)
			assert.Equal(t, state, machine.GetState())
		}
	})

	t.Run("startup failure shuts down from Init", func(t *testing.T) {
		machine := setup()
		require.NoError(t, machine.Transition(StateShuttingDown))
		assert.Equal(t, StateShuttingDown, machine.GetState())
	})

	t.Run("invalid transitions", func(t *testing.T) {
		tests := []struct {
			name string
			path []string
			next string
		}{
			{name: "Init to Restarting", path: nil, next: StateRestarting},
			{name: "Running to Init", path: []string{StateRunning}, next: StateInit},
			{name: "ShuttingDown is terminal", path: []string{StateShuttingDown}, next: StateRunning},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				machine := setup()
				for _, state := range tt.path {
					require.NoError(t, machine.Transition(state))
				}
				before := machine.GetState()
				assert.Error(t, machine.Transition(tt.next))
				assert.False(t, machine.TransitionBool(tt.next))
				assert.Equal(t, before, machine.GetState())
			})
		}
	})
}
