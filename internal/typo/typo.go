// Package typo injects keyboard-style mistakes into generated text.
//
// The mistake rate is on a 0–1000 scale. A chance in [1, 1000] is drawn
// per string; below 100 it yields one round of mistakes, above 100 it
// yields chance/100 rounds, but only while chance is also below the rate.
// A chance of exactly 100 never corrupts. Each round draws a type in
// [1, 300]: below 100 substitutes, 101–199 deletes, above 200 inserts, and
// exactly 100 or 200 does nothing.
package typo

import (
	"math"

	"github.com/zarlcorp/zfake/internal/locale"
)

const (
	chanceMax  = 1000
	typeMax    = 300
	bandWidth  = 100
	maxRate    = 1000
	deleteBand = 2 * bandWidth

	// chanceSalt keeps the chance draw off the state round 0 reseeds with.
	chanceSalt = 0x2545_f491_4f6c_dd1d
)

// Op is the kind of corruption applied in one round.
type Op int

const (
	OpNone Op = iota
	OpSubstitute
	OpDelete
	OpInsert
)

func (o Op) String() string {
	switch o {
	case OpSubstitute:
		return "substitute"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	}
	return "none"
}

// Stream is a reseedable deterministic source of integers.
type Stream interface {
	Reseed(seed int64)
	IntRange(min, max int) int
}

// Injector corrupts strings using symbols from one region's alphabet.
type Injector struct {
	region locale.Region
	stream Stream
}

// New returns an injector that draws from stream. The injector reseeds
// the stream on every call, so callers must finish their own draws first.
func New(region locale.Region, stream Stream) *Injector {
	return &Injector{region: region, stream: stream}
}

// Rounds decides how many corruption rounds s gets for seed and rate.
// Zero means the string is returned unchanged.
func (in *Injector) Rounds(seed int64, rate float64) int {
	in.stream.Reseed(ChanceSeed(seed))
	chance := in.stream.IntRange(1, chanceMax)
	return roundsFor(chance, clampRate(rate))
}

// Apply returns s with zero or more mistakes injected.
func (in *Injector) Apply(s string, seed int64, rate float64) string {
	rounds := in.Rounds(seed, rate)
	if rounds == 0 {
		return s
	}
	return in.corrupt(s, seed, rounds)
}

func (in *Injector) corrupt(s string, seed int64, rounds int) string {
	out := []rune(s)
	for i := range rounds {
		round := int64(i)
		in.stream.Reseed(seed + round)
		mistakeType := in.stream.IntRange(1, typeMax)

		op := opFor(mistakeType)
		if op == OpNone {
			continue
		}

		in.stream.Reseed(seed + int64(mistakeType)*round)
		// len(out) is a valid index: it addresses the position past the end
		idx := in.stream.IntRange(0, len(out))
		out = in.apply(op, out, idx)
	}
	return string(out)
}

func (in *Injector) apply(op Op, out []rune, idx int) []rune {
	switch op {
	case OpSubstitute:
		if idx >= len(out) {
			return out
		}
		out[idx] = locale.RandomSymbol(in.region, in.stream)
	case OpDelete:
		if idx >= len(out) {
			return out
		}
		out = append(out[:idx], out[idx+1:]...)
	case OpInsert:
		sym := locale.RandomSymbol(in.region, in.stream)
		out = append(out[:idx], append([]rune{sym}, out[idx:]...)...)
	}
	return out
}

// ChanceSeed derives the seed of the chance draw from a string's seed.
func ChanceSeed(seed int64) int64 {
	return seed ^ chanceSalt
}

func roundsFor(chance int, rate float64) int {
	c := float64(chance)
	switch {
	case chance < bandWidth && c < rate:
		return 1
	case chance > bandWidth && c < rate:
		return chance / bandWidth
	}
	return 0
}

func opFor(mistakeType int) Op {
	switch {
	case mistakeType < bandWidth:
		return OpSubstitute
	case mistakeType > bandWidth && mistakeType < deleteBand:
		return OpDelete
	case mistakeType > deleteBand:
		return OpInsert
	}
	return OpNone
}

func clampRate(rate float64) float64 {
	if math.IsNaN(rate) || rate < 0 {
		return 0
	}
	return math.Min(rate, maxRate)
}
