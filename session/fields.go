package session

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hexplore/ecs/mode"
	"go.uber.org/zap"
)

func modeField(m mode.Mode) zap.Field {
	return zap.Stringer("mode", m)
}

func phaseField(phase string) zap.Field {
	return zap.String("phase", phase)
}

func errField(err error) zap.Field {
	return zap.Error(err)
}

func scriptMessageField(msg string) zap.Field {
	return zap.String("msg", msg)
}

func positionFields(p cp.Vector) []zap.Field {
	return []zap.Field{zap.Float64("x", p.X), zap.Float64("y", p.Y)}
}
