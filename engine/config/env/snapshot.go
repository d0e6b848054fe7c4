package env

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Snapshot is an immutable view of environment variables captured once at startup. All
// configuration is decoded from a Snapshot so that nothing reads the process environment after
// capture.
type Snapshot struct {
	vars map[string]string
}

// NewSnapshot creates a Snapshot from a copy of vars.
func NewSnapshot(vars map[string]string) Snapshot {
	return Snapshot{vars: maps.Clone(vars)}
}

// CaptureSnapshot captures the process environment, seeded with the values of the given dotenv
// files. Process variables always take precedence over dotenv values, and among dotenv files the
// first file to define a variable wins. Dotenv files that do not exist are skipped.
//
// The process environment is never modified.
func CaptureSnapshot(dotenvPaths ...string) (Snapshot, error) {
	vars := make(map[string]string)

	for _, p := range dotenvPaths {
		fileVars, err := godotenv.Read(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return Snapshot{}, fmt.Errorf("failed to read dotenv file %s: %w", p, err)
		}

		for k, v := range fileVars {
			if _, ok := vars[k]; !ok {
				vars[k] = v
			}
		}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	return Snapshot{vars: vars}, nil
}

// Lookup returns the value of the variable named key and whether it is set.
func (s Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.vars[key]

	return v, ok
}

// Len returns the number of captured variables.
func (s Snapshot) Len() int {
	return len(s.vars)
}

// lookupFirst returns the first non empty value among names.
func (s Snapshot) lookupFirst(names ...string) (string, bool) {
	for _, n := range names {
		if v := s.vars[n]; v != "" {
			return v, true
		}
	}

	return "", false
}
