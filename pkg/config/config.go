// pkg/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig contains the tunable simulation parameters: tile geometry,
// gas properties, item power/flow ratings, and resource densities.
type GameConfig struct {
	Atmosphere AtmosphereConfig          `yaml:"atmosphere"`
	Items      map[string]ItemConfig     `yaml:"items"`
	Resources  map[string]ResourceConfig `yaml:"resources"`
}

// AtmosphereConfig contains tile geometry and gas parameters
type AtmosphereConfig struct {
	TileSizeM     float64              `yaml:"tile_size_m"`
	TileHeightM   float64              `yaml:"tile_height_m"`
	BaselineTempC float64              `yaml:"baseline_temp_c"`
	TickIntervalS float64              `yaml:"tick_interval_s"`
	Gases         map[string]GasConfig `yaml:"gases"`
}

// GasConfig describes one gas species
type GasConfig struct {
	DisplayName       string  `yaml:"display_name"`
	MolarMassKgPerMol float64 `yaml:"molar_mass_kg_per_mol"`
	DefaultMassKg     float64 `yaml:"default_mass_kg"`
}

// ItemConfig describes a placeable device's power and flow ratings.
// Capacity, flow rate, and gas type only apply to some item kinds and
// are zero when absent.
type ItemConfig struct {
	DisplayName   string  `yaml:"display_name"`
	IdlePowerKW   float64 `yaml:"idle_power_kw"`
	OnlinePowerKW float64 `yaml:"online_power_kw,omitempty"`
	CapacityKg    float64 `yaml:"capacity_kg,omitempty"`
	FlowKgPerS    float64 `yaml:"flow_kg_per_s,omitempty"`
	GasType       string  `yaml:"gas_type,omitempty"`
}

// ResourceConfig describes a mineable resource
type ResourceConfig struct {
	DensityKgPerM3 float64 `yaml:"density_kg_per_m3"`
}

// LoadConfig loads a configuration from a YAML file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// LoadOrDefault loads the configuration at path, falling back to
// DefaultConfig when the file is missing or unparsable. The simulation
// must always be able to start.
func LoadOrDefault(path string) *GameConfig {
	config, err := LoadConfig(path)
	if err != nil {
		return DefaultConfig()
	}
	return config
}

// SaveConfig saves a configuration to a YAML file
func SaveConfig(config *GameConfig, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Gas returns the configuration for the named gas, or false if unknown.
func (c *GameConfig) Gas(key string) (GasConfig, bool) {
	gas, ok := c.Atmosphere.Gases[key]
	return gas, ok
}

// Item returns the configuration for the named item, or false if unknown.
func (c *GameConfig) Item(key string) (ItemConfig, bool) {
	item, ok := c.Items[key]
	return item, ok
}

// DefaultConfig returns the built-in configuration covering every key the
// sample ship layout uses
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Atmosphere: AtmosphereConfig{
			TileSizeM:     1.0,
			TileHeightM:   2.0,
			BaselineTempC: 20.0,
			TickIntervalS: 0.25,
			Gases: map[string]GasConfig{
				"O2": {
					DisplayName:       "Oxygen",
					MolarMassKgPerMol: 0.031998,
					DefaultMassKg:     0.5585,
				},
				"N2": {
					DisplayName:       "Nitrogen",
					MolarMassKgPerMol: 0.0280134,
					DefaultMassKg:     1.8393,
				},
				"CO2": {
					DisplayName:       "Carbon Dioxide",
					MolarMassKgPerMol: 0.04401,
					DefaultMassKg:     0.0015,
				},
			},
		},
		Items: map[string]ItemConfig{
			"reactor_uranium": {
				DisplayName:   "Reactor (Uranium)",
				IdlePowerKW:   0.0,
				OnlinePowerKW: -500.0,
			},
			"nav_station": {
				DisplayName: "NavStation",
				IdlePowerKW: 1.5,
			},
			"ship_computer": {
				DisplayName: "ShipComputer",
				IdlePowerKW: 2.5,
			},
			"transponder": {
				DisplayName: "Transponder",
				IdlePowerKW: 5.0,
			},
			"food_generator": {
				DisplayName: "FoodGenerator",
				IdlePowerKW: 2.0,
			},
			"tank": {
				DisplayName: "Tank",
				IdlePowerKW: 0.25,
				CapacityKg:  100.0,
			},
			"dispenser": {
				DisplayName: "Dispenser",
				IdlePowerKW: 0.25,
				FlowKgPerS:  0.02,
				GasType:     "O2",
			},
			"light": {
				DisplayName: "Light",
				IdlePowerKW: 0.1,
			},
			"bed": {
				DisplayName: "BedDevice",
				IdlePowerKW: 0.0,
			},
			"door": {
				DisplayName: "Door",
				IdlePowerKW: 0.0,
			},
		},
		Resources: map[string]ResourceConfig{
			"iron_ore":   {DensityKgPerM3: 5200.0},
			"gold_ore":   {DensityKgPerM3: 19300.0},
			"silver_ore": {DensityKgPerM3: 10490.0},
		},
	}
}
