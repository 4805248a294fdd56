package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/flappy.yaml.
func Default() Config {
	return Config{
		Screen: Screen{
			Width:  800,
			Height: 600,
		},
		FrameRate: 60,
		Physics: Physics{
			Gravity:     0.5,
			FlapImpulse: -10,
			TiltFactor:  3,
			MaxTilt:     30,
		},
		Bird: Bird{
			X:      100,
			Radius: 20,
		},
		Pipes: Pipes{
			Speed:           3,
			Width:           70,
			Gap:             200,
			MinSegment:      100,
			SpawnIntervalMs: 1500,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
