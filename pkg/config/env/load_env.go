package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from one or more .env files.
// A non-empty ENV_PATH environment variable overrides the default paths.
func LoadDotEnv(env string, defaultPaths ...string) error {
	var envPaths []string
	if os.Getenv("ENV_PATH") != "" {
		envPaths = []string{os.Getenv("ENV_PATH")}
	} else {
		slog.Info("ENV_PATH is not set, using default paths", "defaultPaths", defaultPaths)
		envPaths = defaultPaths
	}

	err := godotenv.Load(envPaths...)
	if err != nil {
		if env == "local" || env == "" {
			slog.Error("Failed to load environment variables in local mode", "error", err)
			return err
		}
		slog.Debug("Skipping .env ...")
	}

	return nil
}
