package script

import "fmt"

// Outcome is the result of one payload run.
type Outcome struct {
	// Restart is the truthiness of the payload's return value.
	Restart bool

	// Exited is set when the script called os.exit; ExitCode holds its status.
	Exited   bool
	ExitCode int
}

func (o Outcome) String() string {
	switch {
	case o.Exited:
		return fmt.Sprintf("exit(%d)", o.ExitCode)
	case o.Restart:
		return "restart"
	default:
		return "done"
	}
}
