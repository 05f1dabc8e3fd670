package mode

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("mode: invalid transition")

// Hooks run when a mode enters or exits. Either may be nil.
type Hooks struct {
	Enter func() error
	Exit  func() error
}

// Machine owns the mode stack and runs hooks in transition order. Hooks run
// between frames, never during them.
type Machine struct {
	stack []Mode
	hooks map[Mode]Hooks
}

func NewMachine() *Machine {
	return &Machine{hooks: make(map[Mode]Hooks)}
}

// On registers the hooks for m, replacing any previous ones.
func (m *Machine) On(mode Mode, hooks Hooks) {
	m.hooks[mode] = hooks
}

// Current returns the top of the stack, or None.
func (m *Machine) Current() Mode {
	if len(m.stack) == 0 {
		return None
	}
	return m.stack[len(m.stack)-1]
}

// Active reports whether mode is anywhere on the stack.
func (m *Machine) Active(mode Mode) bool {
	for _, s := range m.stack {
		if s == mode {
			return true
		}
	}
	return false
}

func (m *Machine) Stack() []Mode {
	return append([]Mode(nil), m.stack...)
}

// Push enters mode on top of the current one. Pushing the current mode is a
// no-op. The mode is only pushed when its Enter hook succeeds.
func (m *Machine) Push(mode Mode) error {
	if mode == None {
		return fmt.Errorf("%w: push %s", ErrInvalidTransition, mode)
	}
	if mode == m.Current() {
		return nil
	}
	if mode.Parent() != m.Current() {
		return fmt.Errorf("%w: %s cannot run on top of %s", ErrInvalidTransition, mode, m.Current())
	}
	if enter := m.hooks[mode].Enter; enter != nil {
		if err := enter(); err != nil {
			return fmt.Errorf("mode: enter %s: %w", mode, err)
		}
	}
	m.stack = append(m.stack, mode)
	return nil
}

// Pop exits the current mode. The mode is removed even when its Exit hook
// fails so the stack never holds a half-exited mode.
func (m *Machine) Pop() error {
	if len(m.stack) == 0 {
		return fmt.Errorf("%w: pop on empty stack", ErrInvalidTransition)
	}
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	if exit := m.hooks[top].Exit; exit != nil {
		if err := exit(); err != nil {
			return fmt.Errorf("mode: exit %s: %w", top, err)
		}
	}
	return nil
}

// Set transitions to mode by popping until the stack is a prefix of mode's
// chain, then pushing the rest. Set(None) clears the stack.
func (m *Machine) Set(mode Mode) error {
	chain := mode.Chain()
	for !isPrefix(m.stack, chain) {
		if err := m.Pop(); err != nil {
			return err
		}
	}
	for _, next := range chain[len(m.stack):] {
		if err := m.Push(next); err != nil {
			return err
		}
	}
	return nil
}

func isPrefix(stack, chain []Mode) bool {
	if len(stack) > len(chain) {
		return false
	}
	for i := range stack {
		if stack[i] != chain[i] {
			return false
		}
	}
	return true
}
