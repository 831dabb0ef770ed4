package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// City maps a city name to its dataset file (relative to the data dir).
type City struct {
	Name string `yaml:"name" validate:"required"`
	File string `yaml:"file" validate:"required"`
}

// Catalogue is the layout of the cities YAML file.
type Catalogue struct {
	Cities []City `yaml:"cities" validate:"required,min=1,unique=Name,dive"`
}

// DefaultCities is used when no catalogue file exists.
var DefaultCities = []City{
	{Name: "chicago", File: "chicago.csv"},
	{Name: "new york city", File: "new_york_city.csv"},
	{Name: "washington", File: "washington.csv"},
}

// LoadCities reads and validates the city catalogue at path.
// A missing file yields DefaultCities.
func LoadCities(path string) ([]City, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return append([]City(nil), DefaultCities...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseCities(data)
}

// ParseCities decodes and validates a YAML city catalogue.
// City names are lowercased and trimmed.
func ParseCities(data []byte) ([]City, error) {
	var cat Catalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("config: parse cities: %w", err)
	}

	for i := range cat.Cities {
		cat.Cities[i].Name = strings.ToLower(strings.TrimSpace(cat.Cities[i].Name))
		cat.Cities[i].File = strings.TrimSpace(cat.Cities[i].File)
	}

	if err := validator.New().Struct(cat); err != nil {
		return nil, fmt.Errorf("config: invalid cities: %w", err)
	}
	return cat.Cities, nil
}
