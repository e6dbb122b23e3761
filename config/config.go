package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DBName   string `yaml:"dbname"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
		// Bcrypt hash of the single shared access password. The plain
		// password never appears in config.
		AccessPasswordHash string `yaml:"access_password_hash"`
		TokenTTLMinutes    int    `yaml:"token_ttl_minutes"`
	} `yaml:"auth"`
	Hotel struct {
		Rooms []int `yaml:"rooms"`
	} `yaml:"hotel"`
	Storage struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"storage"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
}

func LoadConfig(path string) (*Config, error) {
	config := &Config{}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}
	config.applyEnv()
	config.applyDefaults()

	if len(config.Hotel.Rooms) == 0 {
		return nil, fmt.Errorf("config: hotel.rooms must list at least one room")
	}
	return config, nil
}

// applyEnv lets secrets and connection details come from the environment,
// overriding whatever the yaml file carries.
func (c *Config) applyEnv() {
	if v := os.Getenv("db_host"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("db_port"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Database.Port = port
		}
	}
	if v := os.Getenv("db_user"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("db_password"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("db_name"); v != "" {
		c.Database.DBName = v
	}
	if v := os.Getenv("secret_key"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("access_password_hash"); v != "" {
		c.Auth.AccessPasswordHash = v
	}
}

func (c *Config) applyDefaults() {
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		c.Auth.TokenTTLMinutes = 60
	}
	if c.Storage.TimeoutSeconds <= 0 {
		c.Storage.TimeoutSeconds = 5
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
}

// StorageTimeout bounds every repository call.
func (c *Config) StorageTimeout() time.Duration {
	return time.Duration(c.Storage.TimeoutSeconds) * time.Second
}

// TokenTTL is the lifetime of an issued session token.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTLMinutes) * time.Minute
}
