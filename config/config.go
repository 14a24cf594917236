package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for camera, detection and alerting behavior.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Camera parameters
	CameraIndex int `json:"camera_index"`

	// Detection parameters
	ModelPath      string  `json:"model_path"`
	MinFaceSize    int     `json:"min_face_size"`
	ScoreThreshold float64 `json:"score_threshold"`
	PyramidScale   float64 `json:"pyramid_scale"`
	WindowStepX    int     `json:"window_step_x"`
	WindowStepY    int     `json:"window_step_y"`

	// Sampling cadence
	SampleIntervalMS int `json:"sample_interval_ms"`

	// Alert tone
	ToneEnabled bool    `json:"tone_enabled"`
	ToneHz      float64 `json:"tone_hz"`
	ToneMS      int     `json:"tone_ms"`

	// Camera preview in the status window
	PreviewMaxW int `json:"preview_max_w"`
	PreviewMaxH int `json:"preview_max_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		CameraIndex:      0,
		ModelPath:        "haarcascade_frontalface_default.xml",
		MinFaceSize:      20,
		ScoreThreshold:   2.0,
		PyramidScale:     0.8,
		WindowStepX:      4,
		WindowStepY:      4,
		SampleIntervalMS: 1000,
		ToneEnabled:      true,
		ToneHz:           440,
		ToneMS:           300,
		PreviewMaxW:      320,
		PreviewMaxH:      240,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.CameraIndex < 0 {
		c.CameraIndex = 0
	}
	if c.ModelPath == "" {
		c.ModelPath = "haarcascade_frontalface_default.xml"
	}
	if c.MinFaceSize <= 0 {
		c.MinFaceSize = 20
	}
	if c.ScoreThreshold <= 0 {
		c.ScoreThreshold = 2.0
	}
	if c.PyramidScale <= 0 || c.PyramidScale >= 1 {
		c.PyramidScale = 0.8
	}
	if c.WindowStepX <= 0 {
		c.WindowStepX = 4
	}
	if c.WindowStepY <= 0 {
		c.WindowStepY = 4
	}
	if c.SampleIntervalMS <= 0 {
		c.SampleIntervalMS = 1000
	}
	if c.ToneHz <= 0 {
		c.ToneHz = 440
	}
	if c.ToneMS <= 0 {
		c.ToneMS = 300
	}
	if c.PreviewMaxW < 64 {
		c.PreviewMaxW = 320
	}
	if c.PreviewMaxH < 64 {
		c.PreviewMaxH = 240
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
