// File: actor/pid.go
package actor

// PID is a unique reference to a running actor instance.
type PID struct {
	ID string
}

// String returns the PID's identifier.
func (pid *PID) String() string {
	if pid == nil {
		return "<nil>"
	}
	return pid.ID
}
