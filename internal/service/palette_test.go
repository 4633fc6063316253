package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// lastRandom always picks the last index.
type lastRandom struct{}

func (lastRandom) IntN(n int) int { return n - 1 }

func TestPaletteIsDistinct(t *testing.T) {
	assert.GreaterOrEqual(t, len(Palette), 12)

	seen := make(map[string]bool)
	for _, c := range Palette {
		assert.False(t, seen[c], "duplicate palette colour %s", c)
		seen[c] = true
	}
}

func TestPickColor(t *testing.T) {
	tests := []struct {
		name string
		rnd  Random
		used []string
		want string
	}{
		{"empty picks from full palette", firstRandom{}, nil, Palette[0]},
		{"skips used colours", firstRandom{}, []string{Palette[0], Palette[1]}, Palette[2]},
		{"last unused", lastRandom{}, []string{Palette[len(Palette)-1]}, Palette[len(Palette)-2]},
		{"exhausted falls back to palette", lastRandom{}, Palette, Palette[len(Palette)-1]},
		{"unknown used colours are ignored", firstRandom{}, []string{"#000000"}, Palette[0]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickColor(tt.rnd, tt.used))
		})
	}
}
