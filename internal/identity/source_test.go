package identity

import (
	"regexp"
	"slices"
	"testing"

	"github.com/zarlcorp/zfake/internal/locale"
)

func draws(s *Source, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.IntRange(0, 1_000_000)
	}
	return out
}

func TestReseedReproduces(t *testing.T) {
	for _, seed := range []int64{0, 1, -1, 42, 9999999999999999} {
		s := NewSource(locale.US, seed)
		first := draws(s, 20)

		s.Reseed(seed)
		if again := draws(s, 20); !slices.Equal(first, again) {
			t.Errorf("seed %d: reseed did not reproduce the stream", seed)
		}

		if other := draws(NewSource(locale.US, seed), 20); !slices.Equal(first, other) {
			t.Errorf("seed %d: fresh source differs from first", seed)
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := draws(NewSource(locale.US, 1), 10)
	b := draws(NewSource(locale.US, 2), 10)
	if slices.Equal(a, b) {
		t.Error("seeds 1 and 2 produced the same stream")
	}
}

func TestIntRangeInclusive(t *testing.T) {
	s := NewSource(locale.US, 5)
	var sawMin, sawMax bool
	for range 2000 {
		v := s.IntRange(0, 3)
		if v < 0 || v > 3 {
			t.Fatalf("IntRange(0, 3) = %d", v)
		}
		sawMin = sawMin || v == 0
		sawMax = sawMax || v == 3
	}
	if !sawMin || !sawMax {
		t.Errorf("bounds not reached: min=%v max=%v", sawMin, sawMax)
	}
}

func TestIntRangeDegenerate(t *testing.T) {
	s := NewSource(locale.US, 5)
	if v := s.IntRange(7, 7); v != 7 {
		t.Errorf("IntRange(7, 7) = %d", v)
	}
	if v := s.IntRange(9, 2); v < 2 || v > 9 {
		t.Errorf("IntRange(9, 2) = %d, want within [2, 9]", v)
	}
}

func TestPhoneDigitsKeepsLiterals(t *testing.T) {
	s := NewSource(locale.Russia, 11)
	got := s.PhoneDigits("+7 (###) ###-##-##")
	if !regexp.MustCompile(`^\+7 \(\d{3}\) \d{3}-\d{2}-\d{2}$`).MatchString(got) {
		t.Errorf("PhoneDigits = %q", got)
	}
}

func TestFactDraws(t *testing.T) {
	tests := []struct {
		region locale.Region
		street *regexp.Regexp
	}{
		{locale.US, regexp.MustCompile(`^\d{3,4} [A-Za-z]+ [A-Za-z]+$`)},
		{locale.Russia, regexp.MustCompile(`^\p{Cyrillic}+\. \p{Cyrillic}+, \d{2}$`)},
		{locale.Germany, regexp.MustCompile(`^\p{L}+ \d{1,3}$`)},
	}

	for _, tt := range tests {
		t.Run(tt.region.String(), func(t *testing.T) {
			s := NewSource(tt.region, 8)
			for range 50 {
				if got := s.StreetAddress(); !tt.street.MatchString(got) {
					t.Errorf("street %q does not match %s", got, tt.street)
				}
				if s.City() == "" || s.FullName() == "" || s.BuildingNumber() == "" {
					t.Fatal("empty fact")
				}
			}
		})
	}
}

func TestUUIDDeterministic(t *testing.T) {
	a := NewSource(locale.Germany, 31).UUID()
	b := NewSource(locale.Germany, 31).UUID()
	c := NewSource(locale.Germany, 32).UUID()
	if a != b {
		t.Errorf("same seed produced %s and %s", a, b)
	}
	if a == c {
		t.Errorf("different seeds produced the same id %s", a)
	}
}
