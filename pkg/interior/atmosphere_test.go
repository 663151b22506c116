// pkg/interior/atmosphere_test.go
package interior

import (
	"math"
	"testing"

	"github.com/ggwsim/ggw-server/pkg/config"
)

func TestNewStandardAir_SeaLevelPressure(t *testing.T) {
	cfg := config.DefaultConfig()
	cell := NewStandardAir(&cfg.Atmosphere)

	pressure := cell.PressureKPa(&cfg.Atmosphere)
	if math.Abs(pressure-101.325) > 1.0 {
		t.Errorf("standard air pressure = %v kPa, expected ~101.325", pressure)
	}
}

func TestPressureKPa_LinearInMass(t *testing.T) {
	cfg := config.DefaultConfig()
	cell := NewStandardAir(&cfg.Atmosphere)
	base := cell.PressureKPa(&cfg.Atmosphere)

	cell.O2Kg *= 2
	cell.N2Kg *= 2
	cell.CO2Kg *= 2
	doubled := cell.PressureKPa(&cfg.Atmosphere)

	if math.Abs(doubled-2*base) > 0.05*base {
		t.Errorf("doubling gas mass: pressure %v -> %v, expected ~%v", base, doubled, 2*base)
	}
}

func TestPressureKPa_VacuumIsZero(t *testing.T) {
	cfg := config.DefaultConfig()
	cell := NewVacuum(cfg.Atmosphere.BaselineTempC)
	if p := cell.PressureKPa(&cfg.Atmosphere); p != 0 {
		t.Errorf("vacuum pressure = %v, expected 0", p)
	}
}

func TestPartialPressures_SumToTotal(t *testing.T) {
	cfg := config.DefaultConfig()
	cell := NewStandardAir(&cfg.Atmosphere)

	total := cell.PressureKPa(&cfg.Atmosphere)
	sum := cell.PartialPressureKPa(GasO2, &cfg.Atmosphere) +
		cell.PartialPressureKPa(GasN2, &cfg.Atmosphere) +
		cell.PartialPressureKPa(GasCO2, &cfg.Atmosphere)

	if math.Abs(total-sum) > 1e-9 {
		t.Errorf("partial pressures sum to %v, total is %v", sum, total)
	}
}

func TestPressureKPa_TemperatureClampedAboveAbsoluteZero(t *testing.T) {
	cfg := config.DefaultConfig()
	cell := NewStandardAir(&cfg.Atmosphere)
	cell.TempC = -400.0

	pressure := cell.PressureKPa(&cfg.Atmosphere)
	if pressure <= 0 || math.IsNaN(pressure) {
		t.Errorf("pressure with clamped temperature = %v, expected positive", pressure)
	}
}

func TestAddGas(t *testing.T) {
	var cell TileAtmosphere

	cell.AddGas(GasO2, 1.5)
	cell.AddGas(GasN2, 2.0)
	cell.AddGas(GasCO2, 0.5)
	if cell.O2Kg != 1.5 || cell.N2Kg != 2.0 || cell.CO2Kg != 0.5 {
		t.Errorf("unexpected masses after AddGas: %+v", cell)
	}

	cell.AddGas(GasXenon, 10.0)
	if cell.TotalMass() != 4.0 {
		t.Errorf("xenon should be discarded, total mass = %v", cell.TotalMass())
	}

	cell.AddGas(GasO2, -5.0)
	if cell.O2Kg != 1.5 {
		t.Errorf("negative mass should be ignored, O2 = %v", cell.O2Kg)
	}
}

func TestClampNonNegative_SnapsDustToVacuum(t *testing.T) {
	cell := TileAtmosphere{O2Kg: 1e-8, N2Kg: 2e-8, CO2Kg: -1e-9}
	cell.clampNonNegative()
	if cell.TotalMass() != 0 {
		t.Errorf("near-empty cell should snap to exact vacuum, total = %v", cell.TotalMass())
	}

	healthy := TileAtmosphere{O2Kg: 0.5, N2Kg: -0.1, CO2Kg: 0.01}
	healthy.clampNonNegative()
	if healthy.N2Kg != 0 {
		t.Errorf("negative N2 should floor at zero, got %v", healthy.N2Kg)
	}
	if healthy.O2Kg != 0.5 {
		t.Errorf("positive O2 should be untouched, got %v", healthy.O2Kg)
	}
}

func TestStepAtmosphere_ConservesMass(t *testing.T) {
	cfg := config.DefaultConfig()
	ship := NewTestLayout(cfg)

	// Make the distribution uneven so diffusion has work to do.
	cell := ship.AtmosphereAt(2, 3)
	cell.O2Kg += 5.0
	cell.CO2Kg += 1.0

	before := ship.TotalAtmosphere()
	for i := 0; i < 40; i++ {
		ship.StepAtmosphere(cfg.Atmosphere.TickIntervalS)
	}
	after := ship.TotalAtmosphere()

	if math.Abs(before.O2Kg-after.O2Kg) > 1e-5 {
		t.Errorf("O2 mass drifted: %v -> %v", before.O2Kg, after.O2Kg)
	}
	if math.Abs(before.N2Kg-after.N2Kg) > 1e-5 {
		t.Errorf("N2 mass drifted: %v -> %v", before.N2Kg, after.N2Kg)
	}
	if math.Abs(before.CO2Kg-after.CO2Kg) > 1e-5 {
		t.Errorf("CO2 mass drifted: %v -> %v", before.CO2Kg, after.CO2Kg)
	}
}

func TestStepAtmosphere_SpreadsTowardNeighbors(t *testing.T) {
	cfg := config.DefaultConfig()
	ship := NewTestLayout(cfg)

	source := ship.AtmosphereAt(2, 3)
	source.O2Kg += 10.0
	neighborBefore := ship.AtmosphereAt(2, 4).O2Kg
	sourceBefore := source.O2Kg

	ship.StepAtmosphere(cfg.Atmosphere.TickIntervalS)

	if ship.AtmosphereAt(2, 3).O2Kg >= sourceBefore {
		t.Error("source tile should lose gas to neighbors")
	}
	if ship.AtmosphereAt(2, 4).O2Kg <= neighborBefore {
		t.Error("neighbor tile should gain gas from the source")
	}
}

func TestStepAtmosphere_WallsStayVacuum(t *testing.T) {
	cfg := config.DefaultConfig()
	ship := NewTestLayout(cfg)

	// Flood the tile next to the outer wall.
	ship.AtmosphereAt(1, 1).O2Kg += 20.0
	for i := 0; i < 20; i++ {
		ship.StepAtmosphere(cfg.Atmosphere.TickIntervalS)
	}

	wall := ship.TileAtmos[ship.idx(0, 1)]
	if wall.TotalMass() != 0 {
		t.Errorf("wall cell accumulated %v kg of gas", wall.TotalMass())
	}
}

func TestStepAtmosphere_TimestepFactorCapped(t *testing.T) {
	cfg := config.DefaultConfig()
	ship := NewTestLayout(cfg)
	ship.AtmosphereAt(2, 3).O2Kg += 10.0

	// A huge timestep must not oscillate or go negative anywhere.
	ship.StepAtmosphere(100.0)
	for i := range ship.TileAtmos {
		if ship.TileAtmos[i].O2Kg < 0 || ship.TileAtmos[i].N2Kg < 0 || ship.TileAtmos[i].CO2Kg < 0 {
			t.Fatalf("negative gas mass at index %d: %+v", i, ship.TileAtmos[i])
		}
	}
}
