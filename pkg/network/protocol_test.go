// pkg/network/protocol_test.go
package network

import (
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Command
		wantErr  bool
	}{
		{
			name:     "set_time_scale",
			line:     `{"type":"set_time_scale","time_scale":100}`,
			expected: SetTimeScaleCommand{TimeScale: 100},
		},
		{
			name:     "move_pawn",
			line:     `{"type":"move_pawn","dx":1,"dy":-1}`,
			expected: MovePawnCommand{DX: 1, DY: -1},
		},
		{
			name:     "toggle_sleep",
			line:     `{"type":"toggle_sleep"}`,
			expected: ToggleSleepCommand{},
		},
		{
			name:     "interact_at",
			line:     `{"type":"interact_at","x":6,"y":7}`,
			expected: InteractAtCommand{X: 6, Y: 7},
		},
		{
			name:    "unknown_type",
			line:    `{"type":"self_destruct"}`,
			wantErr: true,
		},
		{
			name:    "missing_time_scale",
			line:    `{"type":"set_time_scale"}`,
			wantErr: true,
		},
		{
			name:    "missing_move_fields",
			line:    `{"type":"move_pawn","dx":1}`,
			wantErr: true,
		},
		{
			name:    "missing_interact_fields",
			line:    `{"type":"interact_at","x":3}`,
			wantErr: true,
		},
		{
			name:    "not_json",
			line:    `move please`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand([]byte(tt.line))
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseCommand(%q) succeeded, expected error", tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCommand(%q) error = %v", tt.line, err)
			}
			if got != tt.expected {
				t.Errorf("ParseCommand(%q) = %#v, expected %#v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestEncodeCommand_RoundTrip(t *testing.T) {
	commands := []Command{
		SetTimeScaleCommand{TimeScale: 2.5},
		MovePawnCommand{DX: -1, DY: 0},
		ToggleSleepCommand{},
		InteractAtCommand{X: 2, Y: 2},
	}

	for _, cmd := range commands {
		data, err := EncodeCommand(cmd)
		if err != nil {
			t.Fatalf("EncodeCommand(%#v) error = %v", cmd, err)
		}
		decoded, err := ParseCommand(data)
		if err != nil {
			t.Fatalf("ParseCommand(%s) error = %v", data, err)
		}
		if decoded != cmd {
			t.Errorf("round trip %#v -> %s -> %#v", cmd, data, decoded)
		}
	}
}

func TestEncodeCommand_ZeroValuedFieldsSurvive(t *testing.T) {
	// dx/dy of zero and coordinates of zero must still appear on the
	// wire despite omitempty on the envelope.
	data, err := EncodeCommand(MovePawnCommand{DX: 0, DY: 1})
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := ParseCommand(data)
	if err != nil {
		t.Fatalf("ParseCommand(%s) error = %v", data, err)
	}
	if decoded != (MovePawnCommand{DX: 0, DY: 1}) {
		t.Errorf("decoded = %#v", decoded)
	}
}
