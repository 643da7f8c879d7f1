package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DataFile         string
	SessionFile      string
	SeedFile         string
	JWTSecret        string
	SimulatedLatency time.Duration
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DataFile:         getEnv("DATA_FILE", "wellness-db.json"),
		SessionFile:      getEnv("SESSION_FILE", "wellness-session.json"),
		SeedFile:         getEnv("SEED_FILE", ""),
		JWTSecret:        getEnv("JWT_SECRET", "secret"),
		SimulatedLatency: time.Duration(getEnvInt("SIMULATED_LATENCY_MS", 350)) * time.Millisecond,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
