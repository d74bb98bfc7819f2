// Package finitestate provides the state machine that tracks the bootstrap
// driver's lifecycle.
package finitestate

import (
	"log/slog"

	"github.com/robbyt/go-fsm"
)

// Driver state constants
const (
	StateInit         = "Init"         // Probing the platform and creating the window
	StateRunning      = "Running"      // A script environment is live
	StateRestarting   = "Restarting"   // The last environment requested a restart
	StateShuttingDown = "ShuttingDown" // Tearing down the window (terminal state)
)

// DriverTransitions defines the valid state transitions for the bootstrap driver.
var DriverTransitions = map[string][]string{
	StateInit:         {StateRunning, StateShuttingDown},
	StateRunning:      {StateRestarting, StateShuttingDown},
	StateRestarting:   {StateRunning, StateShuttingDown},
	StateShuttingDown: {}, // ShuttingDown is a terminal state
}

// Machine defines the subset of the state machine the driver relies on.
type Machine interface {
	// Transition attempts to transition the state machine to the specified state.
	Transition(state string) error

	// TransitionBool attempts to transition the state machine to the specified state.
	TransitionBool(state string) bool

	// GetState returns the current state of the state machine.
	GetState() string
}

// New creates a driver state machine in StateInit.
func New(handler slog.Handler) (Machine, error) {
	return fsm.New(handler, StateInit, DriverTransitions)
}
