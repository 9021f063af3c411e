package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	serr "binviz/internal/errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Code unit handling for text conversion.
const (
	CodeUnitsWiden  = "widen"  // units above 255 keep their full bit width
	CodeUnitsLatin1 = "latin1" // units above 255 are rejected
)

// DefaultPreviewLimit is the number of dump characters shown for a file.
const DefaultPreviewLimit = 1000

// Environment overrides.
const (
	EnvConfigPath = "BINVIZ_CONFIG"
	EnvDebug      = "BINVIZ_DEBUG"
)

// Display holds the bit grid colors.
type Display struct {
	Theme     string `yaml:"theme"`      // Theme name (default, ocean, ...)
	OneColor  string `yaml:"one_color"`  // Cell color for set bits
	ZeroColor string `yaml:"zero_color"` // Cell color for clear bits
	TextColor string `yaml:"text_color"` // Digit color inside the cells
	Accent    string `yaml:"accent"`     // Titles and borders
	Error     string `yaml:"error"`      // Error alert color
}

// Text configures text conversion.
type Text struct {
	CodeUnits string `yaml:"code_units"` // widen or latin1
}

// Image configures file previews.
type Image struct {
	PreviewLimit   int      `yaml:"preview_limit"`   // Dump characters before truncation
	AlwaysEllipsis bool     `yaml:"always_ellipsis"` // Append "..." even when nothing was cut
	Patterns       []string `yaml:"patterns"`        // Accepted file name globs (advisory)
}

// Watch configures the directory preview mode.
type Watch struct {
	Directories []string `yaml:"directories"`
}

// Logging configures the logger.
type Logging struct {
	Debug bool   `yaml:"debug"`
	JSON  bool   `yaml:"json"`
	File  string `yaml:"file"`
}

// Config represents the application configuration structure.
type Config struct {
	Display Display `yaml:"display"`
	Text    Text    `yaml:"text"`
	Image   Image   `yaml:"image"`
	Watch   Watch   `yaml:"watch"`
	Logging Logging `yaml:"logging"`
}

// DefaultPath returns ~/.config/binviz/config.yaml, or the path named by
// BINVIZ_CONFIG when set.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "binviz", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	cfg.merge(&tempCfg)
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) merge(t *Config) {
	if t.Display.Theme != "" {
		c.ApplyTheme(t.Display.Theme)
	}
	if t.Display.OneColor != "" {
		c.Display.OneColor = t.Display.OneColor
	}
	if t.Display.ZeroColor != "" {
		c.Display.ZeroColor = t.Display.ZeroColor
	}
	if t.Display.TextColor != "" {
		c.Display.TextColor = t.Display.TextColor
	}
	if t.Display.Accent != "" {
		c.Display.Accent = t.Display.Accent
	}
	if t.Display.Error != "" {
		c.Display.Error = t.Display.Error
	}

	if t.Text.CodeUnits != "" {
		c.Text.CodeUnits = t.Text.CodeUnits
	}

	if t.Image.PreviewLimit != 0 {
		c.Image.PreviewLimit = t.Image.PreviewLimit
	}
	c.Image.AlwaysEllipsis = t.Image.AlwaysEllipsis
	if len(t.Image.Patterns) > 0 {
		c.Image.Patterns = t.Image.Patterns
	}

	if len(t.Watch.Directories) > 0 {
		c.Watch.Directories = t.Watch.Directories
	}

	c.Logging = t.Logging
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDebug); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Logging.Debug = debug
		}
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyTheme("default")

	cfg.Text.CodeUnits = CodeUnitsWiden

	cfg.Image.PreviewLimit = DefaultPreviewLimit
	cfg.Image.AlwaysEllipsis = false
	cfg.Image.Patterns = []string{"*.{png,jpg,jpeg,gif,bmp,webp,svg,ico,tif,tiff}"}

	cfg.Watch.Directories = []string{}
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return serr.NewConfigError("nil config", "", serr.InvalidConfig, nil)
	}

	checks := []struct {
		param string
		err   error
	}{
		{"text", validation.ValidateStruct(&c.Text,
			validation.Field(&c.Text.CodeUnits, validation.Required, validation.In(CodeUnitsWiden, CodeUnitsLatin1)),
		)},
		{"image", validation.ValidateStruct(&c.Image,
			validation.Field(&c.Image.PreviewLimit, validation.Required, validation.Min(1)),
			validation.Field(&c.Image.Patterns, validation.Each(validation.Required)),
		)},
		{"display", validation.ValidateStruct(&c.Display,
			validation.Field(&c.Display.OneColor, validation.Required),
			validation.Field(&c.Display.ZeroColor, validation.Required),
		)},
		{"watch", validation.ValidateStruct(&c.Watch,
			validation.Field(&c.Watch.Directories, validation.Each(validation.Required)),
		)},
	}
	for _, check := range checks {
		if check.err != nil {
			return serr.NewConfigError("invalid configuration", check.param, serr.InvalidConfig, check.err)
		}
	}
	return nil
}

// Palette is a named set of display colors.
type Palette struct {
	One    string
	Zero   string
	Text   string
	Accent string
	Error  string
}

var themes = map[string]Palette{
	"default":    {One: "#3B82F6", Zero: "#D1D5DB", Text: "#FFFFFF", Accent: "#4F4FB7", Error: "#EF4444"},
	"dark":       {One: "105", Zero: "238", Text: "255", Accent: "147", Error: "160"},
	"light":      {One: "33", Zero: "252", Text: "232", Accent: "135", Error: "196"},
	"monochrome": {One: "255", Zero: "240", Text: "232", Accent: "245", Error: "250"},
	"ocean":      {One: "31", Zero: "152", Text: "255", Accent: "51", Error: "196"},
	"sunset":     {One: "208", Zero: "223", Text: "232", Accent: "203", Error: "196"},
}

// GetTheme returns a predefined palette by name.
// If the theme doesn't exist, returns the default palette.
func GetTheme(name string) Palette {
	if p, ok := themes[name]; ok {
		return p
	}
	return themes["default"]
}

// ApplyTheme sets the display colors from the named theme.
func (c *Config) ApplyTheme(name string) {
	if _, ok := themes[name]; !ok {
		name = "default"
	}
	p := GetTheme(name)
	c.Display.Theme = name
	c.Display.OneColor = p.One
	c.Display.ZeroColor = p.Zero
	c.Display.TextColor = p.Text
	c.Display.Accent = p.Accent
	c.Display.Error = p.Error
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome", "ocean", "sunset"}
}
