package cmd

import "testing"

func TestResolveBitrate(t *testing.T) {
	tests := []struct {
		name       string
		flagKbps   int
		sourceKbps int
		want       int
	}{
		{"unset picks step above source", 0, 130, 160},
		{"unset with unknown source defaults", 0, 0, 128},
		{"explicit ladder value kept", 192, 130, 192},
		{"explicit off-ladder value kept in range", 200, 0, 200},
		{"explicit below the ladder floors", 8, 0, 64},
		{"explicit above the ladder caps", 19200, 0, 384},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveBitrate(tt.flagKbps, tt.sourceKbps); got != tt.want {
				t.Errorf("resolveBitrate(%d, %d) = %d, want %d", tt.flagKbps, tt.sourceKbps, got, tt.want)
			}
		})
	}
}
