package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/roybobrovich/meal-prep-app/logger"
	"github.com/roybobrovich/meal-prep-app/models"
)

var DB *gorm.DB

type Config struct {
	Port       string
	USDAAPIKey string
	USDAAPIURL string
	RedisAddr  string
	DB         DBConfig
	Log        logger.Config
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Load reads configuration from the environment, after loading .env if
// one is present. Fails when the USDA credentials are missing, so a
// misconfigured container dies at startup instead of on first search.
func Load() (*Config, error) {
	// .env is optional; in the cluster everything comes from the pod env
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnvOrDefault("PORT", "5000"),
		USDAAPIKey: os.Getenv("USDA_API_KEY"),
		USDAAPIURL: getEnvOrDefault("USDA_API_URL", "https://api.nal.usda.gov/fdc/v1"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		DB: DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("DB_NAME", "mealprep"),
		},
		Log: logger.Config{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	if cfg.USDAAPIKey == "" {
		return nil, fmt.Errorf("USDA_API_KEY is not set")
	}
	if cfg.USDAAPIURL == "" {
		return nil, fmt.Errorf("USDA_API_URL is not set")
	}
	return cfg, nil
}

// InitDB connects to Postgres and migrates the schema.
func InitDB(cfg DBConfig) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.Port,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Meal{},
		&models.Ingredient{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
