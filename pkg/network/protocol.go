// pkg/network/protocol.go
package network

import (
	"encoding/json"
	"fmt"
)

// Command types accepted on the wire. Commands arrive as
// newline-delimited JSON objects tagged by a "type" field; snapshots go
// back the other way as one JSON object per line.
const (
	CmdSetTimeScale = "set_time_scale"
	CmdMovePawn     = "move_pawn"
	CmdToggleSleep  = "toggle_sleep"
	CmdInteractAt   = "interact_at"
)

// Command is a parsed client command. The set is closed.
type Command interface {
	isCommand()
}

// SetTimeScaleCommand changes the simulation speed multiplier
type SetTimeScaleCommand struct {
	TimeScale float64
}

// MovePawnCommand steps the interior pawn by a tile delta
type MovePawnCommand struct {
	DX, DY int
}

// ToggleSleepCommand toggles the pawn's sleep state
type ToggleSleepCommand struct{}

// InteractAtCommand activates the device at an interior tile
type InteractAtCommand struct {
	X, Y int
}

func (SetTimeScaleCommand) isCommand() {}
func (MovePawnCommand) isCommand()     {}
func (ToggleSleepCommand) isCommand()  {}
func (InteractAtCommand) isCommand()   {}

// commandEnvelope is the wire shape shared by every command
type commandEnvelope struct {
	Type      string   `json:"type"`
	TimeScale *float64 `json:"time_scale,omitempty"`
	DX        *int     `json:"dx,omitempty"`
	DY        *int     `json:"dy,omitempty"`
	X         *int     `json:"x,omitempty"`
	Y         *int     `json:"y,omitempty"`
}

// ParseCommand decodes one wire line into a Command
func ParseCommand(data []byte) (Command, error) {
	var envelope commandEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse command: %w", err)
	}

	switch envelope.Type {
	case CmdSetTimeScale:
		if envelope.TimeScale == nil {
			return nil, fmt.Errorf("%s command missing time_scale", CmdSetTimeScale)
		}
		return SetTimeScaleCommand{TimeScale: *envelope.TimeScale}, nil
	case CmdMovePawn:
		if envelope.DX == nil || envelope.DY == nil {
			return nil, fmt.Errorf("%s command missing dx/dy", CmdMovePawn)
		}
		return MovePawnCommand{DX: *envelope.DX, DY: *envelope.DY}, nil
	case CmdToggleSleep:
		return ToggleSleepCommand{}, nil
	case CmdInteractAt:
		if envelope.X == nil || envelope.Y == nil {
			return nil, fmt.Errorf("%s command missing x/y", CmdInteractAt)
		}
		return InteractAtCommand{X: *envelope.X, Y: *envelope.Y}, nil
	default:
		return nil, fmt.Errorf("unknown command type: %q", envelope.Type)
	}
}

// EncodeCommand renders a Command as one wire line (without the newline)
func EncodeCommand(cmd Command) ([]byte, error) {
	var envelope commandEnvelope
	switch c := cmd.(type) {
	case SetTimeScaleCommand:
		envelope.Type = CmdSetTimeScale
		envelope.TimeScale = &c.TimeScale
	case MovePawnCommand:
		envelope.Type = CmdMovePawn
		envelope.DX = &c.DX
		envelope.DY = &c.DY
	case ToggleSleepCommand:
		envelope.Type = CmdToggleSleep
	case InteractAtCommand:
		envelope.Type = CmdInteractAt
		envelope.X = &c.X
		envelope.Y = &c.Y
	default:
		return nil, fmt.Errorf("unknown command %T", cmd)
	}
	return json.Marshal(envelope)
}
