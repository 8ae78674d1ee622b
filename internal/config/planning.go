package config

import (
	"bytes"
	"driver-assignment-service/internal/domain"
	"driver-assignment-service/internal/services"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type planningFile struct {
	TrafficFactors  map[string]float64 `yaml:"traffic_factors"`
	CapacityEpsilon *float64           `yaml:"capacity_epsilon"`
}

// LoadPlanning reads the optional planning YAML. An empty path returns the defaults.
func LoadPlanning(path string) (services.PlanningConfig, error) {
	if path == "" {
		return services.DefaultPlanningConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return services.PlanningConfig{}, fmt.Errorf("load planning config %q: %w", path, err)
	}

	cfg, err := ParsePlanning(data)
	if err != nil {
		return services.PlanningConfig{}, fmt.Errorf("load planning config %q: %w", path, err)
	}
	return cfg, nil
}

// ParsePlanning overlays the YAML document on the default planning config.
// Keys not present keep their defaults.
func ParsePlanning(data []byte) (services.PlanningConfig, error) {
	cfg := services.DefaultPlanningConfig()

	var file planningFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return services.PlanningConfig{}, fmt.Errorf("parse planning config: %w", err)
	}

	for label, factor := range file.TrafficFactors {
		level, ok := trafficLabel(label)
		if !ok {
			return services.PlanningConfig{}, fmt.Errorf("parse planning config: unknown traffic level %q", label)
		}
		if factor <= 0 {
			return services.PlanningConfig{}, fmt.Errorf("parse planning config: factor for %s must be positive, got %v", label, factor)
		}
		cfg.TrafficFactors[level] = factor
	}

	if file.CapacityEpsilon != nil {
		if *file.CapacityEpsilon < 0 {
			return services.PlanningConfig{}, fmt.Errorf("parse planning config: capacity_epsilon must not be negative, got %v", *file.CapacityEpsilon)
		}
		cfg.CapacityEpsilon = *file.CapacityEpsilon
	}

	return cfg, nil
}

// trafficLabel accepts only the three known labels, unlike input parsing which
// maps anything unknown to Low.
func trafficLabel(label string) (domain.TrafficLevel, bool) {
	level := domain.ParseTrafficLevel(label)
	return level, strings.EqualFold(strings.TrimSpace(label), level.String())
}
