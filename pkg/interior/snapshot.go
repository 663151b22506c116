// pkg/interior/snapshot.go
package interior

// TileSnapshot is one grid cell in the wire snapshot. Atmos is nil for
// tiles that cannot hold an atmosphere.
type TileSnapshot struct {
	Type  string       `json:"type"`
	Atmos *AtmosSample `json:"atmos"`
}

// DeviceSnapshot flattens a device and its kind-specific payload into
// one wire object. The optional pointers are set only for the kind they
// belong to.
type DeviceSnapshot struct {
	ID      uint64  `json:"id"`
	Kind    string  `json:"kind"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	W       int     `json:"w"`
	H       int     `json:"h"`
	Online  bool    `json:"online"`
	PowerKW float64 `json:"power_kw"`

	FuelKg             *float64 `json:"fuel_kg,omitempty"`
	MaxFuelKg          *float64 `json:"max_fuel_kg,omitempty"`
	PowerOutputKW      *float64 `json:"power_output_kw,omitempty"`
	FuelBurnRateKgPerS *float64 `json:"fuel_burn_rate_kg_per_s,omitempty"`
	ReactorOnline      *bool    `json:"reactor_online,omitempty"`

	O2Kg       *float64 `json:"o2_kg,omitempty"`
	N2Kg       *float64 `json:"n2_kg,omitempty"`
	CO2Kg      *float64 `json:"co2_kg,omitempty"`
	XenonKg    *float64 `json:"xenon_kg,omitempty"`
	CapacityKg *float64 `json:"capacity_kg,omitempty"`

	Active          *bool    `json:"active,omitempty"`
	RateKgPerS      *float64 `json:"rate_kg_per_s,omitempty"`
	GasType         *string  `json:"gas_type,omitempty"`
	ConnectedTankID *uint64  `json:"connected_tank_id,omitempty"`

	Intensity   *float64 `json:"intensity,omitempty"`
	LightOnline *bool    `json:"light_online,omitempty"`

	NavOnline *bool `json:"nav_online,omitempty"`

	Callsign          *string `json:"callsign,omitempty"`
	TransponderOnline *bool   `json:"transponder_online,omitempty"`

	ShipComputerOnline *bool `json:"ship_computer_online,omitempty"`

	Open *bool `json:"open,omitempty"`

	FoodUnits    *float64 `json:"food_units,omitempty"`
	MaxFoodUnits *float64 `json:"max_food_units,omitempty"`
	FoodOnline   *bool    `json:"food_online,omitempty"`
}

// PawnSnapshot is the pawn's wire state
type PawnSnapshot struct {
	X      int         `json:"x"`
	Y      int         `json:"y"`
	Status string      `json:"status"`
	Needs  NeedsState  `json:"needs"`
	Health HealthState `json:"health"`
}

// Snapshot is the interior portion of a world snapshot
type Snapshot struct {
	Width   int                `json:"width"`
	Height  int                `json:"height"`
	Tiles   [][]TileSnapshot   `json:"tiles"`
	Devices []DeviceSnapshot   `json:"devices"`
	Atmos   GasTotals          `json:"atmos"`
	Power   PowerState         `json:"power"`
	Pawn    PawnSnapshot       `json:"pawn"`
}

// BuildSnapshot captures the full interior state for one wire frame
func (w *World) BuildSnapshot() Snapshot {
	ship := w.Ship
	tiles := make([][]TileSnapshot, ship.Height)
	for y := 0; y < ship.Height; y++ {
		row := make([]TileSnapshot, ship.Width)
		for x := 0; x < ship.Width; x++ {
			row[x].Type = ship.TileTypeAt(x, y).String()
			if sample, ok := ship.AtmosSampleAt(x, y); ok {
				s := sample
				row[x].Atmos = &s
			}
		}
		tiles[y] = row
	}

	devices := make([]DeviceSnapshot, 0, len(ship.Devices))
	for _, device := range ship.Devices {
		devices = append(devices, snapshotDevice(device))
	}

	return Snapshot{
		Width:   ship.Width,
		Height:  ship.Height,
		Tiles:   tiles,
		Devices: devices,
		Atmos:   ship.TotalAtmosphere(),
		Power:   ship.Power,
		Pawn: PawnSnapshot{
			X:      w.Pawn.X,
			Y:      w.Pawn.Y,
			Status: w.Pawn.Status.String(),
			Needs:  w.Pawn.Needs,
			Health: w.Pawn.Health,
		},
	}
}

func snapshotDevice(device *Device) DeviceSnapshot {
	snap := DeviceSnapshot{
		ID:      device.ID,
		Kind:    device.Type.String(),
		X:       device.X,
		Y:       device.Y,
		W:       device.W,
		H:       device.H,
		Online:  device.Online,
		PowerKW: device.PowerKW,
	}
	switch data := device.Data.(type) {
	case *ReactorData:
		snap.FuelKg = f64ptr(data.FuelKg)
		snap.MaxFuelKg = f64ptr(data.MaxFuelKg)
		snap.PowerOutputKW = f64ptr(data.PowerOutputKW)
		snap.FuelBurnRateKgPerS = f64ptr(data.FuelBurnRateKgPerS)
		snap.ReactorOnline = boolptr(data.Online)
	case *TankData:
		snap.O2Kg = f64ptr(data.O2Kg)
		snap.N2Kg = f64ptr(data.N2Kg)
		snap.CO2Kg = f64ptr(data.CO2Kg)
		snap.XenonKg = f64ptr(data.XenonKg)
		snap.CapacityKg = f64ptr(data.CapacityKg)
	case *DispenserData:
		snap.Active = boolptr(data.Active)
		snap.RateKgPerS = f64ptr(data.RateKgPerS)
		snap.GasType = strptr(data.Gas.String())
		if data.ConnectedTankID != 0 {
			id := data.ConnectedTankID
			snap.ConnectedTankID = &id
		}
	case *LightData:
		snap.Intensity = f64ptr(data.Intensity)
		snap.LightOnline = boolptr(data.Online)
	case *NavStationData:
		snap.NavOnline = boolptr(data.Online)
	case *TransponderData:
		snap.Callsign = strptr(data.Callsign)
		snap.TransponderOnline = boolptr(data.Online)
	case *ShipComputerData:
		snap.ShipComputerOnline = boolptr(data.Online)
	case *DoorDeviceData:
		snap.Open = boolptr(data.Open)
	case *FoodGeneratorData:
		snap.FoodUnits = f64ptr(data.FoodUnits)
		snap.MaxFoodUnits = f64ptr(data.MaxFoodUnits)
		snap.FoodOnline = boolptr(data.Online)
	}
	return snap
}

func f64ptr(v float64) *float64 { return &v }
func boolptr(v bool) *bool      { return &v }
func strptr(v string) *string   { return &v }
