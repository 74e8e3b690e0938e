package config

import (
	"os"
)

// Settings collects the environment-driven knobs for the process. Twilio
// and JWT settings stay in the environment and are read where used.
type Settings struct {
	Port    string
	DataDir string
}

func Load() Settings {
	s := Settings{
		Port:    os.Getenv("PORT"),
		DataDir: os.Getenv("DATA_DIR"),
	}
	if s.Port == "" {
		s.Port = "8080"
	}
	if s.DataDir == "" {
		s.DataDir = "data"
	}
	return s
}
