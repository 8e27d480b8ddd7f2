package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		SigningKey string `yaml:"signing_key"`
	} `yaml:"auth"`
	Redis struct {
		Addr string `yaml:"addr"`
	} `yaml:"redis"`
	Storage struct {
		Endpoint  string `yaml:"endpoint"`
		Region    string `yaml:"region"`
		Bucket    string `yaml:"bucket"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
	} `yaml:"storage"`
	AI struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"ai"`
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Config file not found at %s, falling back to environment", path)
	} else if err = yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	overrideFromEnv(&cfg.Database.URL, "DATABASE_URL")
	overrideFromEnv(&cfg.Auth.SigningKey, "JWT_SIGNING_KEY")
	overrideFromEnv(&cfg.Redis.Addr, "REDIS_ADDR")
	overrideFromEnv(&cfg.Storage.Endpoint, "S3_ENDPOINT")
	overrideFromEnv(&cfg.Storage.Region, "S3_REGION")
	overrideFromEnv(&cfg.Storage.Bucket, "S3_BUCKET")
	overrideFromEnv(&cfg.Storage.AccessKey, "S3_ACCESS_KEY")
	overrideFromEnv(&cfg.Storage.SecretKey, "S3_SECRET_KEY")
	overrideFromEnv(&cfg.AI.APIKey, "OPENAI_API_KEY")

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "mysql"
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gpt-4o-mini"
	}
	return cfg
}

func overrideFromEnv(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
