package prefabs

import (
	"fmt"

	"github.com/milk9111/dasher/ecs"
	"gopkg.in/yaml.v3"
)

// DasherFile is the embedded tuning for a run.
const DasherFile = "dasher.yaml"

type DasherSpec struct {
	Name      string       `yaml:"name"`
	Window    WindowSpec   `yaml:"window"`
	Player    PlayerSpec   `yaml:"player"`
	Obstacles ObstacleSpec `yaml:"obstacles"`
	Physics   PhysicsSpec  `yaml:"physics"`
	Layers    []LayerSpec  `yaml:"layers"`
	Banner    BannerSpec   `yaml:"banner"`
}

type WindowSpec struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

type PlayerSpec struct {
	Frames   int     `yaml:"frames"`
	FPS      float64 `yaml:"fps"`
	MaxFrame int     `yaml:"max_frame"`
}

type ObstacleSpec struct {
	Count          int     `yaml:"count"`
	Spacing        float64 `yaml:"spacing"`
	Velocity       float64 `yaml:"velocity"`
	Columns        int     `yaml:"columns"`
	Rows           int     `yaml:"rows"`
	FPS            float64 `yaml:"fps"`
	InitialElapsed float64 `yaml:"initial_elapsed"`
	MaxFrame       int     `yaml:"max_frame"`
	HitPadding     float64 `yaml:"hit_padding"`
}

type PhysicsSpec struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

type LayerSpec struct {
	Name  string  `yaml:"name"`
	Speed float64 `yaml:"speed"`
}

type BannerSpec struct {
	Lost string  `yaml:"lost"`
	Won  string  `yaml:"won"`
	Size float64 `yaml:"size"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadDasherSpec decodes dasher.yaml.
func LoadDasherSpec() (*DasherSpec, error) {
	spec, err := LoadSpec[DasherSpec](DasherFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadConfig decodes dasher.yaml into a validated run config.
func LoadConfig() (ecs.Config, error) {
	spec, err := LoadDasherSpec()
	if err != nil {
		return ecs.Config{}, err
	}
	cfg := spec.Config()
	if err := cfg.Validate(); err != nil {
		return ecs.Config{}, fmt.Errorf("prefabs: %s: %w", DasherFile, err)
	}
	return cfg, nil
}

// Config converts the spec to a run config. Cadences are given as frames per
// second in the file and stored as seconds per frame.
func (s *DasherSpec) Config() ecs.Config {
	layers := make([]ecs.LayerConfig, 0, len(s.Layers))
	for _, l := range s.Layers {
		layers = append(layers, ecs.LayerConfig{Name: l.Name, Speed: l.Speed})
	}

	return ecs.Config{
		Title:  s.Window.Title,
		Width:  s.Window.Width,
		Height: s.Window.Height,
		TPS:    s.Window.TPS,
		Player: ecs.PlayerConfig{
			Frames:    s.Player.Frames,
			FrameTime: perFrame(s.Player.FPS),
			MaxFrame:  s.Player.MaxFrame,
		},
		Obstacles: ecs.ObstacleConfig{
			Count:          s.Obstacles.Count,
			Spacing:        s.Obstacles.Spacing,
			Velocity:       s.Obstacles.Velocity,
			Columns:        s.Obstacles.Columns,
			Rows:           s.Obstacles.Rows,
			FrameTime:      perFrame(s.Obstacles.FPS),
			InitialElapsed: s.Obstacles.InitialElapsed,
			MaxFrame:       s.Obstacles.MaxFrame,
			HitPadding:     s.Obstacles.HitPadding,
		},
		Physics: ecs.PhysicsConfig{
			Gravity:     s.Physics.Gravity,
			JumpImpulse: s.Physics.JumpImpulse,
		},
		Layers: layers,
		Banner: ecs.BannerConfig{
			LostText: s.Banner.Lost,
			WonText:  s.Banner.Won,
			Size:     s.Banner.Size,
		},
	}
}

func perFrame(fps float64) float64 {
	if fps <= 0 {
		return 0
	}
	return 1.0 / fps
}
