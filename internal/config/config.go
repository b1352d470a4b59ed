package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type HTTPConfig struct {
	Host          string `yaml:"host" env:"HOST" env-default:"0.0.0.0"`
	Port          string `yaml:"port" env:"PORT" env-default:"5000"`
	MaxImageBytes int64  `yaml:"max_image_bytes" env:"MAX_IMAGE_BYTES" env-default:"10485760"`
	MaxPixels     int64  `yaml:"max_image_pixels" env:"MAX_IMAGE_PIXELS" env-default:"50000000"`
	GinMode       string `yaml:"gin_mode" env:"GIN_MODE" env-default:"release"`
}

func (c HTTPConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type ModelConfig struct {
	Path              string `yaml:"path" env:"MODEL_PATH" env-default:"models/garbage_classification.onnx"`
	MetadataPath      string `yaml:"metadata_path" env:"MODEL_METADATA_PATH" env-default:"models/model_metadata.json"`
	Backend           string `yaml:"backend" env:"MODEL_BACKEND" env-default:"onnx"`
	SharedLibraryPath string `yaml:"onnxruntime_lib" env:"ONNXRUNTIME_LIB"`
}

type LogConfig struct {
	Level       string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Development bool   `yaml:"development" env:"LOG_DEVELOPMENT" env-default:"false"`
}

type TelegramConfig struct {
	Token string `yaml:"token" env:"TELEGRAM_TOKEN"`
}

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Model    ModelConfig    `yaml:"model"`
	Log      LogConfig      `yaml:"log"`
	Telegram TelegramConfig `yaml:"telegram"`
}

// Load reads configuration from the environment, after loading a .env file
// if one exists. When path is set, the YAML file at path is read first and
// environment variables override it.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if cfg.HTTP.MaxImageBytes <= 0 {
		return nil, fmt.Errorf("MAX_IMAGE_BYTES must be positive, got %d", cfg.HTTP.MaxImageBytes)
	}
	return cfg, nil
}
