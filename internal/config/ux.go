package config

// UXConfig holds terminal output preferences.
type UXConfig struct {
	Color bool   `yaml:"color"` // disabled by NO_COLOR or --no-color
	Theme string `yaml:"theme"` // light, dark or auto
}
