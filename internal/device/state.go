package device

import "fmt"

// State represents the connection state of a device as reported by adb.
type State int

const (
	StateDisconnected State = iota
	StateOffline
	StateOnline
	StateUnauthorized
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateOffline:
		return "offline"
	case StateOnline:
		return "online"
	case StateUnauthorized:
		return "unauthorized"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// ParseState converts the adb state string to a State.
func ParseState(s string) (State, error) {
	switch s {
	case "disconnected":
		return StateDisconnected, nil
	case "offline":
		return StateOffline, nil
	case "online", "device":
		return StateOnline, nil
	case "unauthorized":
		return StateUnauthorized, nil
	}
	return StateDisconnected, fmt.Errorf("unknown device state %q", s)
}
