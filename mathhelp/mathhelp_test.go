package mathhelp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetweenInc(t *testing.T) {
	assert.True(t, BetweenInc(5, 1, 10))
	assert.True(t, BetweenInc(5, 10, 1))
	assert.True(t, BetweenInc(1, 1, 10))
	assert.True(t, BetweenInc(10, 1, 10))
	assert.False(t, BetweenInc(0, 1, 10))
	assert.True(t, BetweenInc(-45.0, -90.0, 90.0))
	assert.False(t, BetweenInc(90.5, -90.0, 90.0))
}

func TestPow2(t *testing.T) {
	assert.Equal(t, uint(1), Pow2(0))
	assert.Equal(t, uint(8), Pow2(3))
}

func TestPow4(t *testing.T) {
	assert.Equal(t, uint(1), Pow4(0))
	assert.Equal(t, uint(64), Pow4(3))
	assert.Equal(t, uint(1)<<62, Pow4(31))
}

func TestBool2int(t *testing.T) {
	assert.Equal(t, 1, Bool2int(true))
	assert.Equal(t, 0, Bool2int(false))
}
