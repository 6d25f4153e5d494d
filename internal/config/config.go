package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultElements  = 4
	DefaultDuration  = 1.0
	DefaultBaseDelay = 0.1
	DefaultEasing    = "out-quad"
	DefaultDrive     = "timed"
	DefaultInterrupt = "immediate"
)

// Scalar accepts any YAML scalar as its raw text, so property endpoints
// may be written as bare numbers (0.5) or strings ("300px", "#22ccff")
// interchangeably.
type Scalar string

func (s *Scalar) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("config: expected scalar value, got node kind %d", n.Kind)
	}
	*s = Scalar(n.Value)
	return nil
}

// Config describes one animation scene.
type Config struct {
	Name       string           `yaml:"name"`
	Elements   int              `yaml:"elements"`
	Handles    []string         `yaml:"handles,omitempty"`
	Drive      string           `yaml:"drive"`
	Interrupt  string           `yaml:"interrupt"`
	Global     *GlobalConfig    `yaml:"global,omitempty"`
	Stagger    StaggerConfig    `yaml:"stagger"`
	Properties []PropertyConfig `yaml:"properties"`
}

type GlobalConfig struct {
	Duration float64       `yaml:"duration"`
	Delay    float64       `yaml:"delay"`
	Easing   string        `yaml:"easing"`
	Spring   *SpringConfig `yaml:"spring,omitempty"`
}

// SpringConfig overrides the named easing with spring parameters when
// present.
type SpringConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Period    float64 `yaml:"period"`
}

type PropertyConfig struct {
	Property  string        `yaml:"property"`
	From      Scalar        `yaml:"from"`
	To        Scalar        `yaml:"to"`
	Duration  float64       `yaml:"duration"`
	Delay     float64       `yaml:"delay"`
	Easing    string        `yaml:"easing"`
	Spring    *SpringConfig `yaml:"spring,omitempty"`
	Unit      string        `yaml:"unit,omitempty"`
	UseGlobal bool          `yaml:"use_global"`
}

type StaggerConfig struct {
	Strategy     string     `yaml:"strategy"`
	BaseDelay    float64    `yaml:"base_delay"`
	Order        string     `yaml:"order"`
	ReverseOrder string     `yaml:"reverse_order,omitempty"`
	Seed         int64      `yaml:"seed"`
	Grid         GridConfig `yaml:"grid,omitempty"`
}

type GridConfig struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Origin    string  `yaml:"origin"`
	OriginRow float64 `yaml:"origin_row"`
	OriginCol float64 `yaml:"origin_col"`
	Metric    string  `yaml:"metric"`
	Reverse   string  `yaml:"reverse"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:      "scene",
		Elements:  DefaultElements,
		Drive:     DefaultDrive,
		Interrupt: DefaultInterrupt,
		Stagger: StaggerConfig{
			Strategy:  "linear",
			BaseDelay: DefaultBaseDelay,
			Order:     "first-to-last",
		},
		Properties: []PropertyConfig{
			{
				Property: "opacity",
				From:     "0",
				To:       "1",
				Duration: DefaultDuration,
				Easing:   DefaultEasing,
			},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Properties = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
