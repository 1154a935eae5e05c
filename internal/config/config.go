package config

import "os"

// Config holds everything the app reads from the environment.
type Config struct {
	Port string // server port

	DatabaseURL string // optional Postgres DSN; empty means embedded SQLite
	DBPath      string // SQLite file path

	GoEnv string // dev/prod
}

func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBPath:      getenv("DB_PATH", "furnistore.db"),
		GoEnv:       getenv("GO_ENV", "dev"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
