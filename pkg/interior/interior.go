// pkg/interior/interior.go
package interior

import (
	"github.com/ggwsim/ggw-server/pkg/config"
)

const (
	o2ConsumptionKgPerS = 0.0003
	co2ProductionKgPerS = 0.0003

	lowPressureThresholdKPa = 70.0
	lowO2PartialKPa         = 16.0
	highCO2PartialKPa       = 8.0

	suffocationDamagePerS = 2.0
	vacuumDamagePerS      = 8.0

	hungerRate      = 1.0 / (8.0 * 3600.0)
	thirstRate      = 1.0 / (4.0 * 3600.0)
	restFatigueRate = 1.0 / (16.0 * 3600.0)
	restRecoverRate = 1.0 / (6.0 * 3600.0)
)

// Command is a player action applied to the interior on the next step.
// The set is closed.
type Command interface {
	isCommand()
}

// MoveCommand shifts the pawn by one tile delta
type MoveCommand struct {
	DX, DY int
}

// ToggleSleepCommand toggles sleep when the pawn stands on a bed
type ToggleSleepCommand struct{}

// InteractCommand activates the device covering a tile
type InteractCommand struct {
	X, Y int
}

func (MoveCommand) isCommand()        {}
func (ToggleSleepCommand) isCommand() {}
func (InteractCommand) isCommand()    {}

// World is the interior simulation of a single crewed ship: the ship
// grid, one pawn, a queued command list, and the accumulator that
// decouples the fixed atmosphere timestep from the variable tick.
type World struct {
	Ship *Ship
	Pawn *Pawn

	commands         []Command
	atmosAccumulator float64
	cfg              *config.GameConfig
}

// NewTestShip builds the sample interior with its single test pawn
func NewTestShip(cfg *config.GameConfig) *World {
	return &World{
		Ship: NewTestLayout(cfg),
		Pawn: &Pawn{
			ID:     1,
			Name:   "Test Pawn",
			X:      2,
			Y:      3,
			Status: PawnAwake,
			Needs:  NeedsState{},
			Health: NewDefaultHealth(),
		},
		cfg: cfg,
	}
}

// QueueCommand appends a command for the next step
func (w *World) QueueCommand(cmd Command) {
	w.commands = append(w.commands, cmd)
}

// Step advances the interior by dt seconds: queued commands, devices,
// pawn needs, then as many fixed atmosphere ticks as the accumulator
// covers. Diffusion and breathing always run at the configured interval
// regardless of the caller's tick rate.
func (w *World) Step(dt float64) {
	w.processCommands()
	w.Ship.Step(dt)
	w.updateNeeds(dt)

	w.atmosAccumulator += dt
	tick := w.cfg.Atmosphere.TickIntervalS
	if tick <= 1e-12 {
		return
	}
	for w.atmosAccumulator >= tick {
		w.Ship.StepAtmosphere(tick)
		w.applyAtmosphereEffects(tick)
		w.atmosAccumulator -= tick
	}
}

func (w *World) processCommands() {
	for _, cmd := range w.commands {
		switch c := cmd.(type) {
		case MoveCommand:
			w.tryMovePawn(c.DX, c.DY)
		case ToggleSleepCommand:
			w.toggleSleep()
		case InteractCommand:
			w.interactAt(c.X, c.Y)
		}
	}
	w.commands = w.commands[:0]
}

func (w *World) tryMovePawn(dx, dy int) {
	targetX := w.Pawn.X + dx
	targetY := w.Pawn.Y + dy
	if w.Ship.IsPassable(targetX, targetY) {
		w.Pawn.X = targetX
		w.Pawn.Y = targetY
	}
}

// toggleSleep flips the pawn's sleep state, but only on a bed tile
func (w *World) toggleSleep() {
	if w.Ship.TileTypeAt(w.Pawn.X, w.Pawn.Y) != TileBed {
		return
	}
	if w.Pawn.Status == PawnAwake {
		w.Pawn.Status = PawnSleeping
	} else {
		w.Pawn.Status = PawnAwake
	}
}

// interactAt activates the first device covering (x, y). Door tile
// updates are deferred past the device loop so the tile flip never
// invalidates the iteration.
func (w *World) interactAt(x, y int) {
	if !w.Ship.InBounds(x, y) {
		return
	}
	var doorType TileType
	var doorTiles [][2]int
	for _, device := range w.Ship.Devices {
		if !device.Contains(x, y) {
			continue
		}
		switch data := device.Data.(type) {
		case *BedDeviceData:
			if w.Pawn.X == x && w.Pawn.Y == y {
				w.toggleSleep()
			}
		case *DoorDeviceData:
			data.Open = !data.Open
			if data.Open {
				doorType = TileDoorOpen
			} else {
				doorType = TileDoorClosed
			}
			for ty := device.Y; ty < device.Y+device.H; ty++ {
				for tx := device.X; tx < device.X+device.W; tx++ {
					doorTiles = append(doorTiles, [2]int{tx, ty})
				}
			}
		case *LightData:
			data.Online = !data.Online
			device.Online = data.Online
		case *ReactorData:
			if data.FuelKg > 0 {
				data.Online = !data.Online
				device.Online = data.Online
			}
		case *DispenserData:
			data.Active = !data.Active
		case *FoodGeneratorData:
			if data.FoodUnits > 0 {
				consumed := data.FoodUnits
				if consumed > 1.0 {
					consumed = 1.0
				}
				data.FoodUnits -= consumed
				w.Pawn.Needs.Hunger -= 0.2
				w.Pawn.Needs.clamp()
			}
		}
		break
	}
	for _, tile := range doorTiles {
		w.Ship.SetTileType(tile[0], tile[1], doorType)
	}
}

func (w *World) updateNeeds(dt float64) {
	switch w.Pawn.Status {
	case PawnAwake:
		w.Pawn.Needs.Hunger += hungerRate * dt
		w.Pawn.Needs.Thirst += thirstRate * dt
		w.Pawn.Needs.Rest += restFatigueRate * dt
	case PawnSleeping:
		w.Pawn.Needs.Rest -= restRecoverRate * dt
	}
	w.Pawn.Needs.clamp()
}

// applyAtmosphereEffects runs one fixed-timestep breath: the pawn
// consumes O2 from its tile, exhales CO2 scaled by how much of the
// requirement it actually got, and takes damage from low pressure, low
// O2 partial pressure, high CO2 partial pressure, suffocation, or
// vacuum exposure.
func (w *World) applyAtmosphereEffects(dt float64) {
	atmosCfg := &w.cfg.Atmosphere
	suffocating := false

	if cell := w.Ship.AtmosphereAt(w.Pawn.X, w.Pawn.Y); cell != nil {
		requiredO2 := o2ConsumptionKgPerS * dt
		consumed := requiredO2
		if cell.O2Kg < consumed {
			consumed = cell.O2Kg
		}
		cell.O2Kg -= consumed

		productionScale := 0.0
		if requiredO2 > 0 {
			productionScale = consumed / requiredO2
		}
		cell.CO2Kg += co2ProductionKgPerS * dt * productionScale

		if consumed < requiredO2*0.9 {
			suffocating = true
		}

		pressure := cell.PressureKPa(atmosCfg)
		o2Partial := cell.PartialPressureKPa(GasO2, atmosCfg)
		co2Partial := cell.PartialPressureKPa(GasCO2, atmosCfg)
		damage := 0.0
		if pressure < lowPressureThresholdKPa {
			damage += (lowPressureThresholdKPa - pressure) * 0.005 * dt
		}
		if o2Partial < lowO2PartialKPa {
			damage += (lowO2PartialKPa - o2Partial) * 0.05 * dt
		}
		if co2Partial > highCO2PartialKPa {
			damage += (co2Partial - highCO2PartialKPa) * 0.05 * dt
		}
		w.Pawn.applyDamage(damage)
	} else {
		suffocating = true
		w.Pawn.applyDamage(vacuumDamagePerS * dt)
	}

	if suffocating {
		w.Pawn.SuffocationTime += dt
		w.Pawn.applyDamage(suffocationDamagePerS * dt)
	} else {
		w.Pawn.SuffocationTime = 0
	}
}
