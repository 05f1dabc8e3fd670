package mode

import (
	"errors"
	"reflect"
	"testing"
)

func recordingMachine(log *[]string) *Machine {
	m := NewMachine()
	for _, mode := range []Mode{Base, Explore, Event} {
		mode := mode
		m.On(mode, Hooks{
			Enter: func() error { *log = append(*log, "enter "+mode.String()); return nil },
			Exit:  func() error { *log = append(*log, "exit "+mode.String()); return nil },
		})
	}
	return m
}

func TestChainAndParse(t *testing.T) {
	if got := Event.Chain(); !reflect.DeepEqual(got, []Mode{Base, Explore, Event}) {
		t.Fatalf("unexpected chain %v", got)
	}
	if None.Chain() != nil {
		t.Fatalf("None should have an empty chain")
	}
	for _, name := range []string{"base", " Explore ", "EVENT"} {
		if _, err := Parse(name); err != nil {
			t.Fatalf("parse %q: %v", name, err)
		}
	}
	if _, err := Parse("none"); err == nil {
		t.Fatalf("expected error for none")
	}
	if _, err := Parse("combat"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestPushPop(t *testing.T) {
	var log []string
	m := recordingMachine(&log)

	if err := m.Push(Explore); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("explore without base should fail, got %v", err)
	}
	if err := m.Push(Base); err != nil {
		t.Fatal(err)
	}
	if err := m.Push(Base); err != nil {
		t.Fatalf("re-pushing current mode should be a no-op, got %v", err)
	}
	if err := m.Push(Event); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("event on base should fail, got %v", err)
	}
	if err := m.Push(Explore); err != nil {
		t.Fatal(err)
	}
	if err := m.Push(Event); err != nil {
		t.Fatal(err)
	}
	if m.Current() != Event || !m.Active(Base) || !m.Active(Explore) {
		t.Fatalf("unexpected stack %v", m.Stack())
	}
	if err := m.Pop(); err != nil {
		t.Fatal(err)
	}

	want := []string{"enter base", "enter explore", "enter event", "exit event"}
	if !reflect.DeepEqual(log, want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	if m.Current() != Explore {
		t.Fatalf("expected explore on top, got %s", m.Current())
	}
}

func TestPopEmpty(t *testing.T) {
	m := NewMachine()
	if err := m.Pop(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name  string
		start Mode
		to    Mode
		want  []string
	}{
		{"empty_to_event", None, Event, []string{"enter base", "enter explore", "enter event"}},
		{"event_to_explore", Event, Explore, []string{"exit event"}},
		{"event_to_base", Event, Base, []string{"exit event", "exit explore"}},
		{"explore_to_none", Explore, None, []string{"exit explore", "exit base"}},
		{"same_mode", Explore, Explore, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var log []string
			m := recordingMachine(&log)
			if err := m.Set(tc.start); err != nil {
				t.Fatal(err)
			}
			log = nil
			if err := m.Set(tc.to); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(log, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, log)
			}
			if m.Current() != tc.to {
				t.Fatalf("expected %s on top, got %s", tc.to, m.Current())
			}
		})
	}
}

func TestHookErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("enter_failure_does_not_push", func(t *testing.T) {
		m := NewMachine()
		m.On(Base, Hooks{Enter: func() error { return boom }})
		if err := m.Push(Base); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if m.Current() != None {
			t.Fatalf("failed enter must not push, stack %v", m.Stack())
		}
	})

	t.Run("exit_failure_still_pops", func(t *testing.T) {
		m := NewMachine()
		m.On(Base, Hooks{Exit: func() error { return boom }})
		if err := m.Push(Base); err != nil {
			t.Fatal(err)
		}
		if err := m.Pop(); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if m.Current() != None {
			t.Fatalf("expected empty stack, got %v", m.Stack())
		}
	})
}
