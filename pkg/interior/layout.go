// pkg/interior/layout.go
package interior

import (
	"github.com/ggwsim/ggw-server/pkg/config"
)

// NewTestLayout builds the sample 12x8 ship: walled hull, a doorway at
// the center of the bottom wall, a two-tile bed, and the standard device
// fit-out (reactor, tank, dispenser, lights, consoles).
func NewTestLayout(cfg *config.GameConfig) *Ship {
	const width, height = 12, 8

	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i].Type = TileFloor
	}
	for x := 0; x < width; x++ {
		tiles[x].Type = TileWall
		tiles[(height-1)*width+x].Type = TileWall
	}
	for y := 0; y < height; y++ {
		tiles[y*width].Type = TileWall
		tiles[y*width+width-1].Type = TileWall
	}
	doorX, doorY := width/2, height-1
	tiles[doorY*width+doorX].Type = TileDoorOpen
	tiles[2*width+2].Type = TileBed
	tiles[2*width+3].Type = TileBed

	atmosCfg := &cfg.Atmosphere
	tileAtmos := make([]TileAtmosphere, width*height)
	for i := range tileAtmos {
		if tiles[i].Type.SupportsAtmosphere() {
			tileAtmos[i] = NewStandardAir(atmosCfg)
		} else {
			tileAtmos[i] = NewVacuum(atmosCfg.BaselineTempC)
		}
	}

	itemPower := func(key string, fallback float64) float64 {
		if item, ok := cfg.Item(key); ok {
			return item.IdlePowerKW
		}
		return fallback
	}
	dispenserRate := 0.01
	dispenserGas := GasO2
	if item, ok := cfg.Item("dispenser"); ok {
		if item.FlowKgPerS > 0 {
			dispenserRate = item.FlowKgPerS
		}
		if gas, ok := GasFromName(item.GasType); ok {
			dispenserGas = gas
		}
	}

	nextID := uint64(1)
	newID := func() uint64 {
		id := nextID
		nextID++
		return id
	}

	var devices []*Device
	devices = append(devices, &Device{
		ID: newID(), Type: DeviceReactorUranium,
		X: 5, Y: 2, W: 3, H: 3,
		PowerKW: 0, Online: true,
		Data: &ReactorData{
			FuelKg:             100.0,
			MaxFuelKg:          100.0,
			FuelBurnRateKgPerS: 0.0005,
			PowerOutputKW:      500.0,
			Online:             true,
		},
	})

	tankID := newID()
	devices = append(devices, &Device{
		ID: tankID, Type: DeviceTank,
		X: 3, Y: 4, W: 1, H: 1,
		PowerKW: 0, Online: true,
		Data: &TankData{
			CapacityKg: 200.0,
			O2Kg:       80.0,
			N2Kg:       100.0,
			CO2Kg:      5.0,
			XenonKg:    10.0,
		},
	})

	devices = append(devices, &Device{
		ID: newID(), Type: DeviceDispenser,
		X: 4, Y: 4, W: 1, H: 1,
		PowerKW: itemPower("dispenser", 2.0), Online: true,
		Data: &DispenserData{
			Active:          true,
			RateKgPerS:      dispenserRate,
			Gas:             dispenserGas,
			ConnectedTankID: tankID,
		},
	})

	devices = append(devices, &Device{
		ID: newID(), Type: DeviceLight,
		X: 2, Y: 5, W: 1, H: 1,
		PowerKW: itemPower("light", 1.0), Online: true,
		Data:    &LightData{Intensity: 1.0, Online: true},
	})

	devices = append(devices, &Device{
		ID: newID(), Type: DeviceTransponder,
		X: 8, Y: 1, W: 2, H: 1,
		PowerKW: itemPower("transponder", 5.0), Online: true,
		Data:    &TransponderData{Callsign: "GGW-TEST", Online: true, DMCode: 4242},
	})

	devices = append(devices, &Device{
		ID: newID(), Type: DeviceNavStation,
		X: 8, Y: 3, W: 2, H: 1,
		PowerKW: itemPower("nav_station", 1.5), Online: true,
		Data:    &NavStationData{Online: true},
	})

	devices = append(devices, &Device{
		ID: newID(), Type: DeviceShipComputer,
		X: 8, Y: 5, W: 2, H: 1,
		PowerKW: itemPower("ship_computer", 2.5), Online: true,
		Data:    &ShipComputerData{Online: true},
	})

	devices = append(devices, &Device{
		ID: newID(), Type: DeviceBed,
		X: 2, Y: 2, W: 2, H: 1,
		PowerKW: 0, Online: true,
		Data:    &BedDeviceData{},
	})

	devices = append(devices, &Device{
		ID: newID(), Type: DeviceDoor,
		X: doorX, Y: doorY, W: 1, H: 1,
		PowerKW: 0, Online: true,
		Data:    &DoorDeviceData{Open: true},
	})

	devices = append(devices, &Device{
		ID: newID(), Type: DeviceFoodGenerator,
		X: 4, Y: 2, W: 1, H: 1,
		PowerKW: 3.0, Online: true,
		Data:    &FoodGeneratorData{FoodUnits: 5.0, MaxFoodUnits: 5.0, Online: true},
	})

	ship := &Ship{
		Width:     width,
		Height:    height,
		Tiles:     tiles,
		TileAtmos: tileAtmos,
		Devices:   devices,
		cfg:       cfg,
	}
	ship.RebuildHullShape()
	return ship
}
