// pkg/interior/atmosphere.go
package interior

import (
	"math"

	"github.com/ggwsim/ggw-server/pkg/config"
)

const (
	idealGasR = 8.314462618 // J/(mol*K)

	diffusionCoeff       = 0.4
	diffusionMaxFraction = 0.5

	// Cells below this total mass are snapped to exact vacuum so stray
	// floating dust never lingers.
	massEpsilon = 1e-6
)

// TileAtmosphere holds the gas masses and temperature of one breathable
// tile. Vacuum tiles carry a zero-mass placeholder.
type TileAtmosphere struct {
	O2Kg  float64
	N2Kg  float64
	CO2Kg float64
	TempC float64
}

// AtmosSample is a read-only view of a tile's atmosphere for snapshots
type AtmosSample struct {
	PressureKPa float64 `json:"pressure_kpa"`
	O2Kg        float64 `json:"o2_kg"`
	N2Kg        float64 `json:"n2_kg"`
	CO2Kg       float64 `json:"co2_kg"`
}

// GasTotals aggregates gas masses across the whole ship
type GasTotals struct {
	O2Kg  float64 `json:"o2_kg"`
	N2Kg  float64 `json:"n2_kg"`
	CO2Kg float64 `json:"co2_kg"`
}

// gasDelta accumulates pending diffusion transfers for one tile
type gasDelta struct {
	o2Kg  float64
	n2Kg  float64
	co2Kg float64
}

// NewVacuum returns an empty atmosphere cell at the given temperature
func NewVacuum(tempC float64) TileAtmosphere {
	return TileAtmosphere{TempC: tempC}
}

// NewStandardAir returns a cell seeded with the configured default mass
// of each gas at the baseline temperature
func NewStandardAir(cfg *config.AtmosphereConfig) TileAtmosphere {
	return TileAtmosphere{
		O2Kg:  cfg.Gases["O2"].DefaultMassKg,
		N2Kg:  cfg.Gases["N2"].DefaultMassKg,
		CO2Kg: cfg.Gases["CO2"].DefaultMassKg,
		TempC: cfg.BaselineTempC,
	}
}

// TotalMass returns the summed mass of all gas species in the cell
func (a *TileAtmosphere) TotalMass() float64 {
	return a.O2Kg + a.N2Kg + a.CO2Kg
}

// AddGas injects mass of the given gas into the cell. Xenon is never
// held in tile atmospheres and is silently discarded.
func (a *TileAtmosphere) AddGas(gas GasType, massKg float64) {
	if massKg <= 0 {
		return
	}
	switch gas {
	case GasO2:
		a.O2Kg += massKg
	case GasN2:
		a.N2Kg += massKg
	case GasCO2:
		a.CO2Kg += massKg
	case GasXenon:
	}
}

// clampNonNegative floors every gas at zero and snaps near-empty cells
// to exact vacuum
func (a *TileAtmosphere) clampNonNegative() {
	a.O2Kg = math.Max(a.O2Kg, 0)
	a.N2Kg = math.Max(a.N2Kg, 0)
	a.CO2Kg = math.Max(a.CO2Kg, 0)
	if a.TotalMass() < massEpsilon {
		a.O2Kg = 0
		a.N2Kg = 0
		a.CO2Kg = 0
	}
}

func (a *TileAtmosphere) molesFor(gasKey string, cfg *config.AtmosphereConfig) float64 {
	var massKg float64
	switch gasKey {
	case "O2":
		massKg = a.O2Kg
	case "N2":
		massKg = a.N2Kg
	case "CO2":
		massKg = a.CO2Kg
	default:
		return 0
	}
	gas, ok := cfg.Gases[gasKey]
	if !ok || gas.MolarMassKgPerMol <= 0 {
		return 0
	}
	return massKg / gas.MolarMassKgPerMol
}

func (a *TileAtmosphere) totalMoles(cfg *config.AtmosphereConfig) float64 {
	return a.molesFor("O2", cfg) + a.molesFor("N2", cfg) + a.molesFor("CO2", cfg)
}

func pressureFromMoles(moles, tempC float64, cfg *config.AtmosphereConfig) float64 {
	if moles <= 1e-15 {
		return 0
	}
	tempK := math.Max(tempC+273.15, 1.0)
	volumeM3 := math.Max(cfg.TileSizeM*cfg.TileSizeM*cfg.TileHeightM, 1e-6)
	pressurePa := moles * idealGasR * tempK / volumeM3
	return pressurePa / 1000.0
}

// PressureKPa derives the cell's total pressure from the ideal gas law
func (a *TileAtmosphere) PressureKPa(cfg *config.AtmosphereConfig) float64 {
	return pressureFromMoles(a.totalMoles(cfg), a.TempC, cfg)
}

// PartialPressureKPa derives the partial pressure of one gas species
func (a *TileAtmosphere) PartialPressureKPa(gas GasType, cfg *config.AtmosphereConfig) float64 {
	return pressureFromMoles(a.molesFor(gas.String(), cfg), a.TempC, cfg)
}

// Sample returns a snapshot view of the cell
func (a *TileAtmosphere) Sample(cfg *config.AtmosphereConfig) AtmosSample {
	return AtmosSample{
		PressureKPa: a.PressureKPa(cfg),
		O2Kg:        a.O2Kg,
		N2Kg:        a.N2Kg,
		CO2Kg:       a.CO2Kg,
	}
}
