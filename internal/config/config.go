package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Storage    Storage    `yaml:"storage"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Assistant  Assistant  `yaml:"assistant"`
}

type Storage struct {
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:"./data"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Assistant configures the hosted generative-AI gateway. With an empty
// APIKey every assistant call degrades to its fallback message.
type Assistant struct {
	BaseURL    string        `yaml:"base_url" env:"AI_BASE_URL" env-default:"https://generativelanguage.googleapis.com"`
	APIKey     string        `yaml:"api_key" env:"AI_API_KEY"`
	TextModel  string        `yaml:"text_model" env-default:"gemini-2.5-flash"`
	ImageModel string        `yaml:"image_model" env-default:"gemini-3-pro-image-preview"`
	ChatModel  string        `yaml:"chat_model" env-default:"gemini-3-pro-preview"`
	Timeout    time.Duration `yaml:"timeout" env-default:"30s"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	var cfg Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err)
		}

		return &cfg
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
