package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabasePath  string
	Host          string
	Port          string
	SessionSecret string
	CookieDomain  string
	TemplatesDir  string
	UploadDir     string
	LogLevel      string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	c := &Config{
		DatabasePath:  os.Getenv("DATABASE_PATH"),
		Host:          os.Getenv("HOST"),
		Port:          os.Getenv("PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		CookieDomain:  os.Getenv("COOKIE_DOMAIN"),
		TemplatesDir:  os.Getenv("TEMPLATES_DIR"),
		UploadDir:     os.Getenv("UPLOAD_DIR"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}

	if c.DatabasePath == "" {
		c.DatabasePath = "./capstone.db"
	}
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == "" {
		c.Port = "5000"
	}
	if c.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = "templates"
	}
	if c.UploadDir == "" {
		c.UploadDir = filepath.Join("static", "uploads")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	return c, nil
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) ImageDir() string {
	return filepath.Join(c.UploadDir, "images")
}

func (c *Config) PDFDir() string {
	return filepath.Join(c.UploadDir, "pdfs")
}
