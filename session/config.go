package session

import (
	"fmt"
	"time"

	"github.com/milk9111/hexplore/common"
	"github.com/milk9111/hexplore/ecs/mode"
	"github.com/milk9111/hexplore/prefabs"
)

type Config struct {
	StartMode     mode.Mode
	Viewport      common.Viewport
	Zoom          prefabs.ZoomSpec
	Modes         prefabs.ModesSpec
	ScriptTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		StartMode: mode.Explore,
		Viewport:  common.Viewport{Width: 1280, Height: 720},
		Zoom: prefabs.ZoomSpec{
			Explore:  prefabs.DefaultExploreZoom,
			Event:    prefabs.DefaultEventZoom,
			Duration: prefabs.DefaultZoomDuration,
		},
		ScriptTimeout: DefaultScriptTimeout,
	}
}

// LoadConfig starts from DefaultConfig and reads the zoom levels and mode
// scripts from the prefabs.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	camera, err := prefabs.LoadCameraSettings()
	if err != nil {
		return cfg, fmt.Errorf("session: load config: %w", err)
	}
	cfg.Zoom = camera.Zoom

	modes, err := prefabs.LoadModesSpec()
	if err != nil {
		return cfg, fmt.Errorf("session: load config: %w", err)
	}
	cfg.Modes = modes
	return cfg, nil
}
