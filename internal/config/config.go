package config

import (
	"log"
	"os"
)

type Config struct {
	Port      string
	StoreDSN  string
	RedisAddr string
	RedisPass string
	LogFile   string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("STORE_DSN")
	if dsn == "" {
		dsn = "bendicion.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./bendicion.log" // default log sink in project root
	}

	cfg := Config{
		Port:      port,
		StoreDSN:  dsn,
		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
		LogFile:   logFile,
	}
	log.Printf("[config] PORT=%s STORE_DSN=%s REDIS_ADDR=%s LOG_FILE=%s", cfg.Port, cfg.StoreDSN, cfg.RedisAddr, cfg.LogFile)
	return cfg
}
