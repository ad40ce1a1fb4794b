package identity

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/zarlcorp/zfake/internal/locale"
)

const (
	// MaxMistakeRate is the top of the mistake rate scale.
	MaxMistakeRate = 1000

	// MaxSeedDigits bounds the length of a typed seed.
	MaxSeedDigits = 16

	// SliderScale converts a slider position (0–10) to a mistake rate.
	SliderScale = 100

	// SliderStep is the slider increment.
	SliderStep = 0.25

	// maxRandomSeed is 2^53-1, the largest seed the random action draws.
	maxRandomSeed = 1<<53 - 1
)

var (
	ErrSeedNotNumeric   = errors.New("seed must be a number")
	ErrSeedTooLong      = fmt.Errorf("seed must be at most %d digits", MaxSeedDigits)
	ErrMistakeRateRange = fmt.Errorf("mistake rate must be between 0 and %d", MaxMistakeRate)
)

// Options is an immutable snapshot of generation settings. A new snapshot
// starts a new epoch of displayed records.
type Options struct {
	Region      locale.Region `json:"region"`
	MistakeRate float64       `json:"mistake_rate"`
	Seed        int64         `json:"seed"`
}

// WithRegion returns a copy of o with the region replaced.
func (o Options) WithRegion(r locale.Region) Options {
	o.Region = r
	return o
}

// WithMistakeRate returns a copy of o with the mistake rate replaced.
func (o Options) WithMistakeRate(rate float64) Options {
	o.MistakeRate = rate
	return o
}

// WithSeed returns a copy of o with the seed replaced.
func (o Options) WithSeed(seed int64) Options {
	o.Seed = seed
	return o
}

// ClampRate forces rate into [0, MaxMistakeRate].
func ClampRate(rate float64) float64 {
	switch {
	case rate != rate: // NaN
		return 0
	case rate < 0:
		return 0
	case rate > MaxMistakeRate:
		return MaxMistakeRate
	}
	return rate
}

// ParseSeed validates a typed seed. An empty string is seed 0.
func ParseSeed(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if len(s) > MaxSeedDigits {
		return 0, ErrSeedTooLong
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSeedNotNumeric, s)
	}
	return n, nil
}

// ParseMistakeRate validates a typed mistake rate on the 0–1000 scale.
func ParseMistakeRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != v {
		return 0, fmt.Errorf("%w: %q", ErrMistakeRateRange, s)
	}
	if v < 0 || v > MaxMistakeRate {
		return 0, fmt.Errorf("%w: %q", ErrMistakeRateRange, s)
	}
	return v, nil
}

// SliderRate converts a slider value (0–10) to a mistake rate.
func SliderRate(slider float64) float64 {
	return ClampRate(slider * SliderScale)
}

// RateSlider converts a mistake rate to the nearest slider position.
func RateSlider(rate float64) float64 {
	steps := ClampRate(rate) / SliderScale / SliderStep
	return float64(int(steps+0.5)) * SliderStep
}

// RandomSeed draws a fresh seed in [1, 2^53-1] using crypto/rand.
func RandomSeed() int64 {
	v, err := rand.Int(rand.Reader, big.NewInt(maxRandomSeed))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return v.Int64() + 1
}
