package addr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_ValidAddresses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		octets [4]uint8
		dword  uint32
	}{
		{"0.0.0.0", [4]uint8{0, 0, 0, 0}, 0},
		{"255.255.255.255", [4]uint8{255, 255, 255, 255}, 4294967295},
		{"127.0.0.1", [4]uint8{127, 0, 0, 1}, 2130706433},
		{"192.168.100.1", [4]uint8{192, 168, 100, 1}, 3232261121},
		{"1.2.3.4", [4]uint8{1, 2, 3, 4}, 16909060},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			quad, err := Parse(tt.input)

			require.NoError(t, err)
			require.Equal(t, tt.octets, quad.Octets)
			require.Equal(t, tt.dword, quad.Dword())
		})
	}
}

func TestParse_InvalidAddresses(t *testing.T) {
	t.Parallel()

	tests := []string{
		"",
		"999.1.1.1",
		"1.2.3",
		"1.2.3.4.5",
		"1.2",
		" 1.2.3.4",
		"1.2.3.4 ",
		"::1",
		"::ffff:1.2.3.4",
		"0x7F.0.0.1",
		"a.b.c.d",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(input)

			require.ErrorIs(t, err, ErrInvalidAddress)
			require.Contains(t, err.Error(), input)
		})
	}
}

func TestQuad_CollapsedScalars(t *testing.T) {
	t.Parallel()

	// 192.168.100.1: u16 collapses the last two octets, u24 the last three.
	quad, err := Parse("192.168.100.1")
	require.NoError(t, err)

	require.Equal(t, uint32(100<<8|1), quad.U16())
	require.Equal(t, uint32(168<<16|100<<8|1), quad.U24())
}
