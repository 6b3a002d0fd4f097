package config

import "os"

const (
	EnvConfig = "STRUNK_CONFIG"
	EnvDict   = "STRUNK_DICT"
	EnvRepo   = "STRUNK_REPO"
)

type EnvVar struct {
	Name        string
	Value       string
	Description string
}

// AsMap returns the environment variables read by strunk with their current
// values.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		EnvConfig: {EnvConfig, os.Getenv(EnvConfig), "Path of the YAML config file (default strunk.yaml)"},
		EnvDict:   {EnvDict, os.Getenv(EnvDict), "Path or URL of the dictionary used by inWordDashes"},
		EnvRepo:   {EnvRepo, os.Getenv(EnvRepo), "Report repository: a directory or a sqlite file"},
	}
}

// Value returns flag if it is set, else the environment variable key, else
// file.
func Value(flag, key, file string) string {
	if flag != "" {
		return flag
	}
	if v := os.Getenv(key); v != "" {
		return v
	}
	return file
}
