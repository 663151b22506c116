// pkg/interior/ship.go
package interior

import (
	"github.com/ggwsim/ggw-server/pkg/config"
	"github.com/ggwsim/ggw-server/pkg/event"
	"github.com/ggwsim/ggw-server/pkg/physics"
)

// Ship is the interior of one spacecraft: a tile grid, a parallel
// atmosphere grid of identical dimensions, a device list, the power
// accounting state, and the derived hull polygon. Events may be nil; a
// ship without a bus simply runs silently.
type Ship struct {
	Width     int
	Height    int
	Tiles     []Tile
	TileAtmos []TileAtmosphere
	Power     PowerState
	Devices   []*Device
	Hull      physics.HullShape
	Events    *event.Bus

	cfg *config.GameConfig
}

func (s *Ship) idx(x, y int) int {
	return y*s.Width + x
}

// InBounds reports whether (x, y) lies inside the grid
func (s *Ship) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Width && y < s.Height
}

// TileTypeAt returns the tile type at (x, y), or TileEmpty out of bounds
func (s *Ship) TileTypeAt(x, y int) TileType {
	if !s.InBounds(x, y) {
		return TileEmpty
	}
	return s.Tiles[s.idx(x, y)].Type
}

// IsPassable reports whether a pawn can stand on (x, y)
func (s *Ship) IsPassable(x, y int) bool {
	if !s.InBounds(x, y) {
		return false
	}
	return s.TileTypeAt(x, y).Passable()
}

// AtmosphereAt returns the atmosphere cell at (x, y), or nil if the tile
// is out of bounds or cannot hold an atmosphere
func (s *Ship) AtmosphereAt(x, y int) *TileAtmosphere {
	if !s.InBounds(x, y) {
		return nil
	}
	if !s.TileTypeAt(x, y).SupportsAtmosphere() {
		return nil
	}
	return &s.TileAtmos[s.idx(x, y)]
}

// AtmosSampleAt returns a snapshot view of the atmosphere at (x, y), or
// false for vacuum tiles
func (s *Ship) AtmosSampleAt(x, y int) (AtmosSample, bool) {
	cell := s.AtmosphereAt(x, y)
	if cell == nil {
		return AtmosSample{}, false
	}
	return cell.Sample(&s.cfg.Atmosphere), true
}

// SetTileType changes the tile at (x, y) and reconciles its atmosphere
// cell: non-breathable types discard their gas to vacuum, breathable
// types are seeded with standard air only when previously empty so that
// repeated door toggles never overwrite a populated cell.
func (s *Ship) SetTileType(x, y int, tileType TileType) {
	if !s.InBounds(x, y) {
		return
	}
	atmosCfg := &s.cfg.Atmosphere
	idx := s.idx(x, y)
	s.Tiles[idx].Type = tileType
	if !tileType.SupportsAtmosphere() {
		s.TileAtmos[idx] = NewVacuum(atmosCfg.BaselineTempC)
	} else if s.TileAtmos[idx].TotalMass() <= 1e-12 {
		s.TileAtmos[idx] = NewStandardAir(atmosCfg)
	}
}

// TotalAtmosphere sums every gas species across all tiles
func (s *Ship) TotalAtmosphere() GasTotals {
	var total GasTotals
	for i := range s.TileAtmos {
		total.O2Kg += s.TileAtmos[i].O2Kg
		total.N2Kg += s.TileAtmos[i].N2Kg
		total.CO2Kg += s.TileAtmos[i].CO2Kg
	}
	return total
}

// DeviceAt returns the first device whose footprint covers (x, y)
func (s *Ship) DeviceAt(x, y int) *Device {
	for _, device := range s.Devices {
		if device.Contains(x, y) {
			return device
		}
	}
	return nil
}

// findOtherDevice resolves a device ID among all devices except the one
// at selfIdx. A device can never alias itself: a dispenser sitting on
// its own footprint must not withdraw from its own record.
func (s *Ship) findOtherDevice(selfIdx int, id uint64) *Device {
	for i, device := range s.Devices {
		if i == selfIdx {
			continue
		}
		if device.ID == id {
			return device
		}
	}
	return nil
}

// pickOutputTile chooses where a device injects gas: the first
// breathable tile on the row just past the footprint's bottom edge,
// falling back to any breathable tile inside the footprint.
func (s *Ship) pickOutputTile(d *Device) (int, int, bool) {
	frontY := d.Y + d.H
	if frontY < s.Height {
		for tx := d.X; tx < d.X+d.W && tx < s.Width; tx++ {
			if s.TileTypeAt(tx, frontY).SupportsAtmosphere() {
				return tx, frontY, true
			}
		}
	}
	for ty := d.Y; ty < d.Y+d.H && ty < s.Height; ty++ {
		for tx := d.X; tx < d.X+d.W && tx < s.Width; tx++ {
			if s.TileTypeAt(tx, ty).SupportsAtmosphere() {
				return tx, ty, true
			}
		}
	}
	return 0, 0, false
}

func (s *Ship) injectGas(x, y int, gas GasType, massKg float64) {
	if massKg <= 0 {
		return
	}
	if cell := s.AtmosphereAt(x, y); cell != nil {
		cell.AddGas(gas, massKg)
	}
}

// pendingInjection defers a dispenser's atmosphere write until after its
// own device data mutation is complete
type pendingInjection struct {
	device *Device
	gas    GasType
	massKg float64
}

// Step runs the per-tick device pass: power accounting, reactor fuel
// burn, and dispenser tank-to-atmosphere transfer.
func (s *Ship) Step(dt float64) {
	s.Power.TotalProductionKW = 0
	s.Power.TotalConsumptionKW = 0

	for i, device := range s.Devices {
		if device.Online && device.PowerKW > 0 {
			s.Power.TotalConsumptionKW += device.PowerKW
		} else if device.Online && device.PowerKW < 0 {
			s.Power.TotalProductionKW += -device.PowerKW
		}

		var pending *pendingInjection

		switch data := device.Data.(type) {
		case *ReactorData:
			if data.Online && data.FuelKg > 0 {
				s.Power.TotalProductionKW += data.PowerOutputKW
				burn := data.FuelBurnRateKgPerS * dt
				if burn > data.FuelKg {
					burn = data.FuelKg
				}
				data.FuelKg -= burn
				if data.FuelKg <= 0 {
					data.FuelKg = 0
					data.Online = false
					if s.Events != nil {
						s.Events.Publish(event.NewReactorEvent(s, device.ID))
					}
				}
			}
		case *DispenserData:
			if !device.Online || !data.Active {
				continue
			}
			transfer := data.RateKgPerS * dt
			if transfer <= 0 {
				continue
			}
			if data.ConnectedTankID == 0 {
				continue
			}
			tankDevice := s.findOtherDevice(i, data.ConnectedTankID)
			if tankDevice == nil {
				continue
			}
			tank, ok := tankDevice.Data.(*TankData)
			if !ok {
				continue
			}
			moved := tank.withdrawGas(data.Gas, transfer)
			// Xenon is drawn down but never injected into the
			// atmosphere; it is a deliberate sink.
			if data.Gas == GasXenon {
				moved = 0
			}
			if moved > 0 {
				pending = &pendingInjection{device: device, gas: data.Gas, massKg: moved}
			}
		}

		if pending != nil {
			if tx, ty, ok := s.pickOutputTile(pending.device); ok {
				s.injectGas(tx, ty, pending.gas, pending.massKg)
			}
			// No target tile: the gas is lost, not refunded.
		}
	}

	s.Power.NetKW = s.Power.TotalProductionKW - s.Power.TotalConsumptionKW
}

// diffusionNeighbors is the fixed half-neighborhood that visits every
// undirected adjacent pair (including diagonals) exactly once.
var diffusionNeighbors = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}

// StepAtmosphere advances diffusion by one fixed atmosphere timestep.
// Deltas accumulate in a scratch buffer and apply after the full sweep
// so the result is independent of tile visitation order.
func (s *Ship) StepAtmosphere(dt float64) {
	if dt <= 0 {
		return
	}
	factor := diffusionCoeff * dt
	if factor > diffusionMaxFraction {
		factor = diffusionMaxFraction
	}
	if factor <= 0 {
		return
	}

	deltas := make([]gasDelta, len(s.TileAtmos))
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			idxA := s.idx(x, y)
			if !s.Tiles[idxA].Type.SupportsAtmosphere() {
				continue
			}
			for _, offset := range diffusionNeighbors {
				nx := x + offset[0]
				ny := y + offset[1]
				if nx < 0 || ny < 0 || nx >= s.Width || ny >= s.Height {
					continue
				}
				idxB := s.idx(nx, ny)
				if !s.Tiles[idxB].Type.SupportsAtmosphere() {
					continue
				}
				cellA := &s.TileAtmos[idxA]
				cellB := &s.TileAtmos[idxB]
				deltaO2 := (cellB.O2Kg - cellA.O2Kg) * factor
				deltaN2 := (cellB.N2Kg - cellA.N2Kg) * factor
				deltaCO2 := (cellB.CO2Kg - cellA.CO2Kg) * factor
				deltas[idxA].o2Kg += deltaO2
				deltas[idxB].o2Kg -= deltaO2
				deltas[idxA].n2Kg += deltaN2
				deltas[idxB].n2Kg -= deltaN2
				deltas[idxA].co2Kg += deltaCO2
				deltas[idxB].co2Kg -= deltaCO2
			}
		}
	}

	for i := range s.TileAtmos {
		s.TileAtmos[i].O2Kg += deltas[i].o2Kg
		s.TileAtmos[i].N2Kg += deltas[i].n2Kg
		s.TileAtmos[i].CO2Kg += deltas[i].co2Kg
		s.TileAtmos[i].clampNonNegative()
	}
}
