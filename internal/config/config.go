package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Groq        GroqConfig        `yaml:"groq"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Profile     ProfileConfig     `yaml:"profile"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Audio       AudioConfig       `yaml:"audio"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type GroqConfig struct {
	APIKey string `yaml:"-"`
	Model  string `yaml:"model"`
}

type GeminiConfig struct {
	APIKey string   `yaml:"-"`
	Models []string `yaml:"models"`
}

type ProfileConfig struct {
	Language string `yaml:"language"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type AudioConfig struct {
	Downmix    bool   `yaml:"downmix"`
	FFmpegPath string `yaml:"ffmpeg_path"`
}

// Load reads the YAML config file, applies defaults and overlays the
// secret keys from the environment. Missing keys are not rejected here;
// they surface as engine construction or service-call failures.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	cfg.Groq.APIKey = os.Getenv("GROQ_API_KEY")
	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Groq.Model == "" {
		c.Groq.Model = "whisper-large-v3"
	}
	if len(c.Gemini.Models) == 0 {
		c.Gemini.Models = []string{"gemini-2.5-flash", "gemini-1.5-flash", "gemini-2.0-flash"}
	}
	for _, m := range c.Gemini.Models {
		if m == "" {
			return fmt.Errorf("gemini.models contains an empty model name")
		}
	}
	if c.Profile.Language == "" {
		c.Profile.Language = "English"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Audio.FFmpegPath == "" {
		c.Audio.FFmpegPath = "ffmpeg"
	}
	return nil
}
