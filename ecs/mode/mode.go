// Package mode is the game-mode state machine. Modes form a stack: Base is
// the root, Explore runs on top of Base and Event runs on top of Explore.
package mode

import (
	"fmt"
	"strings"
)

type Mode int

const (
	None Mode = iota
	Base
	Explore
	Event
)

var names = map[Mode]string{
	None:    "none",
	Base:    "base",
	Explore: "explore",
	Event:   "event",
}

func (m Mode) String() string {
	if name, ok := names[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Parent returns the mode that must be active below m.
func (m Mode) Parent() Mode {
	switch m {
	case Explore:
		return Base
	case Event:
		return Explore
	default:
		return None
	}
}

// Chain returns the stack that has m on top, root first.
func (m Mode) Chain() []Mode {
	if m == None {
		return nil
	}
	return append(m.Parent().Chain(), m)
}

func Parse(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for m, name := range names {
		if m != None && name == key {
			return m, nil
		}
	}
	return None, fmt.Errorf("mode: unknown mode %q", s)
}

// UnmarshalText lets modes appear as map keys and values in config files.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
