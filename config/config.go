package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL string
	MongoURL    string
	DBType      string
	Port        string
	PDFSavePath string
	R2Bucket    string
	R2AccountID string
	R2PublicURL string
	R2AccessKey string
	R2SecretKey string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL: os.Getenv("POSTGRES_URL"),
		MongoURL:    os.Getenv("MONGO_URL"),
		DBType:      os.Getenv("DB_TYPE"),
		Port:        os.Getenv("PORT"),
		PDFSavePath: os.Getenv("PDF_SAVE_PATH"),
		R2Bucket:    os.Getenv("R2_BUCKET"),
		R2AccountID: os.Getenv("R2_ACCOUNT_ID"),
		R2PublicURL: os.Getenv("R2_PUBLIC_URL"),
		R2AccessKey: os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBType == "" {
		cfg.DBType = "memory"
	}
	if cfg.PDFSavePath == "" {
		cfg.PDFSavePath = "./pdfs"
	}
	return cfg
}

// R2Configured reports whether all variables needed for R2 upload are set.
func (c *Config) R2Configured() bool {
	return c.R2Bucket != "" && c.R2AccountID != "" && c.R2PublicURL != ""
}
