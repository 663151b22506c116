// pkg/interior/device.go
package interior

// DeviceType identifies a device kind. The set is closed: every place
// that behavior differs switches exhaustively over it.
type DeviceType int

const (
	DeviceTank DeviceType = iota
	DeviceReactorUranium
	DeviceDispenser
	DeviceNavStation
	DeviceTransponder
	DeviceShipComputer
	DeviceBed
	DeviceToilet
	DeviceFoodGenerator
	DeviceRCSThruster
	DeviceLight
	DeviceDoor
	DevicePowerLine
	DeviceGasLine
)

// String returns the wire name of the device kind
func (d DeviceType) String() string {
	switch d {
	case DeviceTank:
		return "Tank"
	case DeviceReactorUranium:
		return "ReactorUranium"
	case DeviceDispenser:
		return "Dispenser"
	case DeviceNavStation:
		return "NavStation"
	case DeviceTransponder:
		return "Transponder"
	case DeviceShipComputer:
		return "ShipComputer"
	case DeviceBed:
		return "BedDevice"
	case DeviceToilet:
		return "Toilet"
	case DeviceFoodGenerator:
		return "FoodGenerator"
	case DeviceRCSThruster:
		return "RCSThruster"
	case DeviceLight:
		return "Light"
	case DeviceDoor:
		return "DoorDevice"
	case DevicePowerLine:
		return "PowerLine"
	case DeviceGasLine:
		return "GasLine"
	default:
		return "Unknown"
	}
}

// Device is one placed interior device occupying a rectangular tile
// footprint. PowerKW is signed: positive draws power, negative produces.
type Device struct {
	ID      uint64
	Type    DeviceType
	X, Y    int
	W, H    int
	PowerKW float64
	Online  bool
	Data    DeviceData
}

// Contains reports whether the tile (x, y) lies inside the footprint
func (d *Device) Contains(x, y int) bool {
	return x >= d.X && y >= d.Y && x < d.X+d.W && y < d.Y+d.H
}

// DeviceData is the per-kind payload. Exactly one concrete type is
// active per device, selected by the device's Type. The set is closed;
// new kinds require a new variant here.
type DeviceData interface {
	isDeviceData()
}

// TankData stores gas reserves by species
type TankData struct {
	CapacityKg float64
	O2Kg       float64
	N2Kg       float64
	CO2Kg      float64
	XenonKg    float64
}

// ReactorData models a fuel-burning power plant. Online here is the
// reactor's own switch, distinct from the device-level flag.
type ReactorData struct {
	FuelKg             float64
	MaxFuelKg          float64
	FuelBurnRateKgPerS float64
	PowerOutputKW      float64
	Online             bool
}

// DispenserData releases gas from a linked tank into the atmosphere.
// ConnectedTankID is a non-owning reference resolved by ID lookup every
// tick; zero means unlinked.
type DispenserData struct {
	Active          bool
	RateKgPerS      float64
	Gas             GasType
	ConnectedTankID uint64
}

// NavStationData marks the navigation console
type NavStationData struct {
	Online bool
}

// TransponderData broadcasts the ship's identity
type TransponderData struct {
	Callsign string
	Online   bool
	DMCode   uint32
}

// ShipComputerData marks the main computer
type ShipComputerData struct {
	Online bool
}

// BedDeviceData marks a sleepable bed
type BedDeviceData struct{}

// ToiletData marks a toilet
type ToiletData struct{}

// FoodGeneratorData dispenses food units on interaction
type FoodGeneratorData struct {
	FoodUnits    float64
	MaxFoodUnits float64
	Online       bool
}

// RCSThrusterData marks a reaction-control thruster
type RCSThrusterData struct {
	UsesAnyGas   bool
	PreferredGas GasType
	Online       bool
}

// LightData marks a light fixture
type LightData struct {
	Intensity float64
	Online    bool
}

// DoorDeviceData tracks a door's open state; the underlying tiles flip
// between DoorOpen and DoorClosed with it
type DoorDeviceData struct {
	Open bool
}

// PowerLineData marks a power conduit segment
type PowerLineData struct{}

// GasLineData marks a gas conduit segment
type GasLineData struct{}

func (*TankData) isDeviceData()          {}
func (*ReactorData) isDeviceData()       {}
func (*DispenserData) isDeviceData()     {}
func (*NavStationData) isDeviceData()    {}
func (*TransponderData) isDeviceData()   {}
func (*ShipComputerData) isDeviceData()  {}
func (*BedDeviceData) isDeviceData()     {}
func (*ToiletData) isDeviceData()        {}
func (*FoodGeneratorData) isDeviceData() {}
func (*RCSThrusterData) isDeviceData()   {}
func (*LightData) isDeviceData()         {}
func (*DoorDeviceData) isDeviceData()    {}
func (*PowerLineData) isDeviceData()     {}
func (*GasLineData) isDeviceData()       {}

// withdrawGas removes up to amountKg of the given gas from the tank and
// returns how much came out
func (t *TankData) withdrawGas(gas GasType, amountKg float64) float64 {
	var reserve *float64
	switch gas {
	case GasO2:
		reserve = &t.O2Kg
	case GasN2:
		reserve = &t.N2Kg
	case GasCO2:
		reserve = &t.CO2Kg
	case GasXenon:
		reserve = &t.XenonKg
	default:
		return 0
	}
	moved := amountKg
	if *reserve < moved {
		moved = *reserve
	}
	*reserve -= moved
	return moved
}

// PowerState is the per-tick power accounting. NetKW is informational
// only; nothing throttles devices on deficit.
type PowerState struct {
	NetKW              float64 `json:"net_kw"`
	TotalProductionKW  float64 `json:"total_production_kw"`
	TotalConsumptionKW float64 `json:"total_consumption_kw"`
}
