package geohash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		lat, lon float64
		bits     uint
		want     uint
		wantErr  bool
	}{
		{lat: -90, lon: -180, bits: 2, want: 0b00},
		{lat: -90, lon: 0, bits: 2, want: 0b01},
		{lat: 0, lon: -180, bits: 2, want: 0b10},
		{lat: 0, lon: 0, bits: 2, want: 0b11},
		{lat: 45, lon: -45, bits: 4, want: 0b1011},
		{lat: -45, lon: 135, bits: 4, want: 0b0111},
		{lat: 0, lon: 0, bits: 0, want: 0},
		{lat: 91, lon: 0, bits: 2, wantErr: true},
		{lat: 0, lon: 181, bits: 2, wantErr: true},
		{lat: 0, lon: 0, bits: 65, wantErr: true},
	}
	for _, tt := range tests {
		name := fmt.Sprintf(`Encode(%v, %v, %d)`, tt.lat, tt.lon, tt.bits)
		t.Run(name, func(t *testing.T) {
			got, err := Encode(tt.lat, tt.lon, tt.bits, NumericMSB)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equalf(t, tt.want, got, `(%v, %v) should encode into %b, got %b`, tt.lat, tt.lon, tt.want, got)
		})
	}
}

func TestEncodeUnknownMode(t *testing.T) {
	_, err := Encode(0, 0, 2, Mode(42))
	assert.Error(t, err)
}

// the last bit always encodes longitude, whatever the parity of the bit depth
func TestEncodeAnchorsAlternationAtLastBit(t *testing.T) {
	for bits := uint(1); bits <= 8; bits++ {
		got, err := Encode(0, 180, bits, NumericMSB)
		require.NoError(t, err)
		assert.Equalf(t, uint(1), got&1, `%d bits`, bits)
	}
}

func TestEncodeString(t *testing.T) {
	tests := []struct {
		lat, lon float64
		chars    uint
		want     string
	}{
		// the classic example
		{lat: 42.605, lon: -5.603, chars: 5, want: "ezs42"},
		{lat: 57.64911, lon: 10.40744, chars: 11, want: "u4pruydqqvj"},
		{lat: -90, lon: -180, chars: 3, want: "000"},
	}
	for _, tt := range tests {
		name := fmt.Sprintf(`EncodeString(%v, %v, %d)`, tt.lat, tt.lon, tt.chars)
		t.Run(name, func(t *testing.T) {
			got, err := EncodeString(tt.lat, tt.lon, tt.chars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
