package render

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func randomColor(rng *rand.Rand) Color {
	return RGB(uint8(rng.IntN(256)), uint8(rng.IntN(256)), uint8(rng.IntN(256)))
}

func TestLerpColorEndpoints(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for range 500 {
		a, b := randomColor(rng), randomColor(rng)
		assert.Equal(t, a, LerpColor(a, b, 0))
		assert.Equal(t, b, LerpColor(a, b, 1))
	}
}

func TestLerpColorClampsT(t *testing.T) {
	a, b := RGB(10, 20, 30), RGB(200, 100, 50)

	assert.Equal(t, a, LerpColor(a, b, -3))
	assert.Equal(t, b, LerpColor(a, b, 7))
	assert.Equal(t, a, LerpColor(a, b, math.NaN()))
	assert.Equal(t, RGB(105, 60, 40), LerpColor(a, b, 0.5))
}

func TestMultiplyColor(t *testing.T) {
	c := RGB(100, 200, 50)

	tests := []struct {
		name   string
		factor float64
		want   Color
	}{
		{"identity", 1, c},
		{"half truncates", 0.5, RGB(50, 100, 25)},
		{"zero", 0, RGB(0, 0, 0)},
		{"negative", -2, RGB(0, 0, 0)},
		{"saturates", 3, RGB(255, 255, 150)},
		{"infinite", math.Inf(1), RGB(255, 255, 255)},
		{"nan", math.NaN(), RGB(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MultiplyColor(c, tt.factor))
		})
	}
}

func TestAddColorSaturates(t *testing.T) {
	assert.Equal(t, RGB(255, 150, 255), AddColor(RGB(200, 100, 255), RGB(100, 50, 1)))
	assert.Equal(t, RGB(3, 5, 7), AddColor(RGB(1, 2, 3), RGB(2, 3, 4)))
}

func TestColorOpsStayOpaque(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for range 500 {
		a, b := randomColor(rng), randomColor(rng)
		f := rng.Float64()*10 - 5
		for _, c := range []Color{LerpColor(a, b, f), MultiplyColor(a, f), AddColor(a, b)} {
			assert.Equal(t, uint8(255), c.A)
		}
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, uint32(0xff9600), Hex(RGB(255, 150, 0)))
	assert.Equal(t, uint32(0), Hex(ColorBlack))
	assert.Equal(t, uint32(0xffffff), Hex(ColorWhite))
}
