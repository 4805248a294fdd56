// Package config provides YAML-based game configuration loading and
// validation for the flappy game.
package config

// Config contains all tunable constants of the game. Values are fixed for
// the lifetime of a session.
type Config struct {
	Screen    Screen  `yaml:"screen"`
	FrameRate int     `yaml:"frame_rate"`
	Physics   Physics `yaml:"physics"`
	Bird      Bird    `yaml:"bird"`
	Pipes     Pipes   `yaml:"pipes"`
}

// Screen defines the world dimensions in pixels.
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Physics defines the bird's kinematics.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"`
	TiltFactor  float64 `yaml:"tilt_factor"`
	MaxTilt     float64 `yaml:"max_tilt"`
}

// Bird defines the bird's placement and hitbox.
type Bird struct {
	X      float64 `yaml:"x"`
	Radius float64 `yaml:"radius"`
}

// Pipes defines obstacle geometry and the spawn schedule.
type Pipes struct {
	Speed           float64 `yaml:"speed"`
	Width           float64 `yaml:"width"`
	Gap             int     `yaml:"gap"`
	MinSegment      int     `yaml:"min_segment"`
	SpawnIntervalMs int64   `yaml:"spawn_interval_ms"`
}
