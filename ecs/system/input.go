package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hexplore/common"
	"github.com/milk9111/hexplore/ecs"
	"github.com/milk9111/hexplore/ecs/component"
)

// InputPoller samples the input devices once per frame.
type InputPoller func() component.Input

type InputSystem struct {
	poll InputPoller
}

func NewInputSystem(poll InputPoller) *InputSystem {
	return &InputSystem{poll: poll}
}

// Update copies the frame's input snapshot into every Input component.
func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.poll == nil {
		return
	}

	snapshot := i.poll()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = snapshot
	})
}

// EbitenPoller reads WASD/arrow keys, the left mouse button and the cursor.
// The cursor counts as absent when it lies outside the viewport.
func EbitenPoller(viewport func() common.Viewport) InputPoller {
	return func() component.Input {
		in := component.Input{
			Up:            ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
			Down:          ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
			Left:          ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
			Right:         ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
			CommitPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		}

		sx, sy := ebiten.CursorPosition()
		x, y := float64(sx), float64(sy)
		if viewport != nil && viewport().Contains(x, y) {
			in.Cursor = cp.Vector{X: x, Y: y}
			in.HasCursor = true
		}
		return in
	}
}
