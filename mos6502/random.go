package mos6502

import "math/rand"

// RandomSource supplies the pseudo-random byte stored at $00FE.
type RandomSource interface {
	Byte() byte
}

// RandomRefresh selects how often $00FE is refreshed.
type RandomRefresh int

const (
	RefreshPerLoad RandomRefresh = iota // Once, when a program is loaded.
	RefreshPerStep                      // Before every executed instruction.
)

// SeededRandom is a RandomSource backed by math/rand. The same seed always
// produces the same sequence.
type SeededRandom struct {
	rng *rand.Rand
}

func NewSeededRandom(seed int64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewSource(seed))}
}

func (r *SeededRandom) Byte() byte {
	return byte(r.rng.Intn(0x100))
}
