package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv copies KEY=VALUE pairs from a dotenv file into the process
// environment. A missing file is not an error and variables that are already
// set to a non-empty value win over the file.
func loadDotEnv(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	for k, v := range vars {
		if os.Getenv(k) != "" {
			continue
		}
		_ = os.Setenv(k, v)
	}
	return nil
}
