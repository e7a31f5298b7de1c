package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	envFileVar     = "CREDFETCH_ENV_FILE"
	defaultEnvFile = ".env"
)

// loadEnvFile loads KEY=value pairs from the file named by CREDFETCH_ENV_FILE,
// or .env. Variables already present in the environment are left alone and a
// missing file is not an error.
func loadEnvFile() error {
	p := os.Getenv(envFileVar)
	if p == "" {
		p = defaultEnvFile
	}
	if err := godotenv.Load(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.WithField("file", p).Debug("No environment file found")
			return nil
		}
		return errors.Wrapf(err, "could not load %s", p)
	}
	return nil
}
