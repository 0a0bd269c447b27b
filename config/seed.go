package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// SeedReviewer is one roster entry; languages are referenced by name.
type SeedReviewer struct {
	FirstName string   `yaml:"first_name"`
	LastName  string   `yaml:"last_name"`
	Languages []string `yaml:"languages"`
}

// SeedData is the static language list and reviewer roster loaded at startup.
type SeedData struct {
	Languages []string       `yaml:"languages"`
	Reviewers []SeedReviewer `yaml:"reviewers"`
}

// LoadSeedData parses path, or the embedded seed.yaml when path is empty.
func LoadSeedData(path string) (*SeedData, error) {
	raw := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}
	return ParseSeedData(raw)
}

func ParseSeedData(raw []byte) (*SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}
