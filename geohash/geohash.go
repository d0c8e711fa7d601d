// Package geohash converts a latitude/longitude pair into an interleaved
// integer by bisecting both ranges, one bit per step, most significant bit
// first. The numeric form is bit-compatible with a Morton code in which the
// even bit positions carry longitude and the odd ones latitude.
// It also renders the classic base32 text form.
package geohash

import (
	"fmt"
	"strings"

	"github.com/pdok/zcurve/mathhelp"
)

// Mode selects the output convention of Encode.
type Mode int

const (
	// NumericMSB is the raw interleaved integer, most significant bit first,
	// longitude on the even bit positions (counted from the least significant).
	NumericMSB Mode = iota
	// Base32 is the bit convention of the classic textual geohash:
	// alternation anchored at the most significant bit, longitude first.
	Base32
)

const base32Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// MaxBits is the widest supported encoding, limited by the uint result.
const MaxBits = 64

// Encode returns lat/lon as an interleaved integer of the given number of bits.
func Encode(lat, lon float64, bits uint, mode Mode) (uint, error) {
	if mode != NumericMSB && mode != Base32 {
		return 0, fmt.Errorf("unknown geohash mode %d", mode)
	}
	if bits > MaxBits {
		return 0, fmt.Errorf("bit depth %d exceeds the maximum of %d", bits, MaxBits)
	}
	if !mathhelp.BetweenInc(lat, -90.0, 90.0) {
		return 0, fmt.Errorf("latitude %v is outside [-90, 90]", lat)
	}
	if !mathhelp.BetweenInc(lon, -180.0, 180.0) {
		return 0, fmt.Errorf("longitude %v is outside [-180, 180]", lon)
	}
	// NumericMSB anchors the lat/lon alternation at the least significant bit
	// (the last bit is always longitude), Base32 at the most significant one.
	lonFirst := mode == Base32 || bits%2 == 1
	return encodeBits(lat, lon, bits, lonFirst), nil
}

// EncodeString returns the classic base32 geohash of 5*chars bits.
func EncodeString(lat, lon float64, chars uint) (string, error) {
	code, err := Encode(lat, lon, chars*5, Base32)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i := int(chars) - 1; i >= 0; i-- {
		b.WriteByte(base32Alphabet[(code>>(uint(i)*5))&0b11111])
	}
	return b.String(), nil
}

func encodeBits(lat, lon float64, bits uint, lonFirst bool) uint {
	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0
	var code uint
	for i := uint(0); i < bits; i++ {
		code <<= 1
		if (i%2 == 0) == lonFirst {
			mid := (lonMin + lonMax) / 2
			if lon >= mid {
				code |= 1
				lonMin = mid
			} else {
				lonMax = mid
			}
		} else {
			mid := (latMin + latMax) / 2
			if lat >= mid {
				code |= 1
				latMin = mid
			} else {
				latMax = mid
			}
		}
	}
	return code
}
