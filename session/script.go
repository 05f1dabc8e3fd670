package session

import (
	"context"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/hexplore/ecs/mode"
	"github.com/milk9111/hexplore/prefabs"
)

// Mode scripts assign on_enter and/or on_exit; both receive the engine map.
const modeScriptPrelude = `
on_enter := undefined
on_exit := undefined
`

const modeScriptDispatch = `
if __phase == "enter" && !is_undefined(on_enter) {
	on_enter(__engine)
} else if __phase == "exit" && !is_undefined(on_exit) {
	on_exit(__engine)
}
`

const (
	phaseEnter = "enter"
	phaseExit  = "exit"
)

type modeScript struct {
	path     string
	compiled *tengo.Compiled
}

func compileModeScript(path string) (*modeScript, error) {
	body, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("session: load script %s: %w", path, err)
	}

	src := modeScriptPrelude + string(body) + "\n" + modeScriptDispatch
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("session: compile script %s: %w", path, err)
	}
	return &modeScript{path: path, compiled: compiled}, nil
}

func (ms *modeScript) run(ctx context.Context, phase string, engine *tengo.ImmutableMap) error {
	if err := ms.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := ms.compiled.Set("__engine", engine); err != nil {
		return err
	}
	return ms.compiled.RunContext(ctx)
}

// scriptFor returns the compiled script for m, compiling on first use.
// Modes without a script return nil.
func (s *Session) scriptFor(m mode.Mode) (*modeScript, error) {
	path := s.cfg.Modes.Script(m.String())
	if path == "" {
		return nil, nil
	}
	if ms, ok := s.scripts[m]; ok && ms.path == path {
		return ms, nil
	}
	ms, err := compileModeScript(path)
	if err != nil {
		return nil, err
	}
	s.scripts[m] = ms
	return ms, nil
}

// runScript runs m's script for phase. Failures are logged and never abort
// the transition.
func (s *Session) runScript(m mode.Mode, phase string) {
	ms, err := s.scriptFor(m)
	if err != nil {
		s.log.Warn("mode script unavailable", modeField(m), errField(err))
		return
	}
	if ms == nil {
		return
	}

	timeout := s.cfg.ScriptTimeout
	if timeout <= 0 {
		timeout = DefaultScriptTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := ms.run(ctx, phase, s.scriptEngine(m)); err != nil {
		s.log.Warn("mode script failed", modeField(m), phaseField(phase), errField(err))
	}
}

// DefaultScriptTimeout bounds a single hook script run.
const DefaultScriptTimeout = 50 * time.Millisecond

func (s *Session) scriptEngine(m mode.Mode) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		msg, ok := tengo.ToString(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "msg", Expected: "string", Found: args[0].TypeName()}
		}
		s.log.Info("mode script", modeField(m), scriptMessageField(msg))
		return tengo.UndefinedValue, nil
	}}

	values["zoom"] = &tengo.UserFunction{Name: "zoom", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		scale, ok := tengo.ToFloat64(args[0])
		if !ok || scale <= 0 {
			return tengo.FalseValue, nil
		}
		if !s.retargetZoom(scale) {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["set_active"] = &tengo.UserFunction{Name: "set_active", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		active, ok := tengo.ToBool(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		if !s.SetActive(active) {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["player_position"] = &tengo.UserFunction{Name: "player_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		pos, ok := s.PlayerPosition()
		if !ok {
			return tengo.UndefinedValue, nil
		}
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: pos.X}, &tengo.Float{Value: pos.Y}}}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
