// pkg/interior/gas.go
package interior

import "strings"

// GasType identifies one gas species
type GasType int

const (
	GasO2 GasType = iota
	GasN2
	GasCO2
	GasXenon
)

// String returns the config key and wire name of the gas
func (g GasType) String() string {
	switch g {
	case GasO2:
		return "O2"
	case GasN2:
		return "N2"
	case GasCO2:
		return "CO2"
	case GasXenon:
		return "Xenon"
	default:
		return "Unknown"
	}
}

// GasFromName parses a gas name case-insensitively.
// Unknown names return false.
func GasFromName(name string) (GasType, bool) {
	switch strings.ToUpper(name) {
	case "O2":
		return GasO2, true
	case "N2":
		return GasN2, true
	case "CO2":
		return GasCO2, true
	case "XENON":
		return GasXenon, true
	default:
		return GasO2, false
	}
}
