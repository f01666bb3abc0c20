// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const defaultDotEnvFile = ".env"

// loadDotEnv copies variables from the given .env files (default ".env")
// into the process environment. Variables that are already set are left
// untouched and missing files are skipped.
func loadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{defaultDotEnvFile}
	}

	for _, p := range paths {
		err := godotenv.Load(p)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return fmt.Errorf("error loading dotenv file %s: %w", p, err)
	}

	return nil
}
