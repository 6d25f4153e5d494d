package config

var Presets = map[string]*Config{
	"fade-rise": {
		Name: "fade-rise", Elements: 5, Drive: "timed", Interrupt: "immediate",
		Stagger: StaggerConfig{Strategy: "linear", BaseDelay: 0.08, Order: "first-to-last"},
		Properties: []PropertyConfig{
			{Property: "opacity", From: "0", To: "1", Duration: 0.6, Easing: "out-cubic"},
			{Property: "y", From: "24px", To: "0px", Duration: 0.6, Easing: "out-cubic"},
		},
	},
	"spring-pop": {
		Name: "spring-pop", Elements: 3, Drive: "timed", Interrupt: "immediate",
		Stagger: StaggerConfig{Strategy: "linear", BaseDelay: 0.12, Order: "center-out"},
		Properties: []PropertyConfig{
			{Property: "scale", From: "0.5", To: "1", Duration: 0.9, Spring: &SpringConfig{Amplitude: 1.0, Period: 0.3}},
			{Property: "opacity", From: "0", To: "1", Duration: 0.3, Easing: "out-quad"},
		},
	},
	"grid-wave": {
		Name: "grid-wave", Elements: 16, Drive: "timed", Interrupt: "preserve-phase",
		Stagger: StaggerConfig{
			Strategy: "grid", BaseDelay: 0.5,
			Grid: GridConfig{Rows: 4, Cols: 4, Origin: "center", Metric: "euclidean", Reverse: "symmetric"},
		},
		Properties: []PropertyConfig{
			{Property: "opacity", From: "0", To: "1", Duration: 0.4, Easing: "out-sine"},
			{Property: "rotate", From: "-90deg", To: "0deg", Duration: 0.4, Easing: "out-sine"},
		},
	},
	"cascade": {
		Name: "cascade", Elements: 8, Drive: "scrubbed", Interrupt: "immediate",
		Global: &GlobalConfig{Duration: 0.5, Easing: "in-out-quad"},
		Stagger: StaggerConfig{Strategy: "linear", BaseDelay: 0.06, Order: "random", Seed: 42},
		Properties: []PropertyConfig{
			{Property: "x", From: "-120px", To: "0px", UseGlobal: true},
			{Property: "opacity", From: "0", To: "1", UseGlobal: true},
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
