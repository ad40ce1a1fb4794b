// Package locale maps regions to their phone masks and the keyboard-adjacent
// alphabets used when injecting typos.
package locale

import (
	"errors"
	"fmt"
	"strings"
)

// Region is a closed set of supported locales.
type Region int

const (
	US Region = iota
	Russia
	Germany
)

// ErrUnknownRegion is returned by Parse for names outside the supported set.
var ErrUnknownRegion = errors.New("unknown region")

// MaskDigit marks a position in a phone mask that receives a random digit.
const MaskDigit = '#'

const (
	latinAlphabet    = "QWERTYUIOP[]ASDFGHJKL;'ZXCVBM,./qwertyuio+pasdfghjkl-=zxcvbnm"
	cyrillicAlphabet = "ЙЦУКЕНГШЩЗХЪ/ФЫВАПРОЛДЖЭЯЧСМИТЬБЮ.йцукенгшщзхъ-=фывапролджэ+ячсмитьбю."
)

type regionInfo struct {
	title    string
	tag      string
	code     string
	mask     string
	alphabet []rune
}

var regions = map[Region]regionInfo{
	US: {
		title:    "US",
		tag:      "en_US",
		code:     "us",
		mask:     "(###) ###-####",
		alphabet: []rune(latinAlphabet),
	},
	Russia: {
		title:    "Russia",
		tag:      "ru",
		code:     "ru",
		mask:     "+7 (###) ###-##-##",
		alphabet: []rune(cyrillicAlphabet),
	},
	Germany: {
		title:    "Germany",
		tag:      "de",
		code:     "de",
		mask:     "0### ## ## ###",
		alphabet: []rune(latinAlphabet),
	},
}

// All returns every supported region in display order.
func All() []Region {
	return []Region{US, Russia, Germany}
}

// Parse resolves a region from its title, locale tag or short code.
// Matching is case-insensitive.
func Parse(s string) (Region, error) {
	needle := strings.TrimSpace(s)
	for _, r := range All() {
		info := regions[r]
		if strings.EqualFold(needle, info.title) ||
			strings.EqualFold(needle, info.tag) ||
			strings.EqualFold(needle, info.code) {
			return r, nil
		}
	}
	return US, fmt.Errorf("%w: %q", ErrUnknownRegion, s)
}

// Valid reports whether r is one of the supported regions.
func (r Region) Valid() bool {
	_, ok := regions[r]
	return ok
}

// String returns the display title, e.g. "Germany".
func (r Region) String() string {
	if info, ok := regions[r]; ok {
		return info.title
	}
	return fmt.Sprintf("Region(%d)", int(r))
}

// Tag returns the locale tag used by the fact corpora, e.g. "en_US".
func (r Region) Tag() string {
	return r.info().tag
}

// Code returns the short lowercase code, e.g. "de".
func (r Region) Code() string {
	return r.info().code
}

// Next returns the region after r in display order, wrapping around.
func (r Region) Next() Region {
	all := All()
	for i, x := range all {
		if x == r {
			return all[(i+1)%len(all)]
		}
	}
	return US
}

// Prev returns the region before r in display order, wrapping around.
func (r Region) Prev() Region {
	all := All()
	for i, x := range all {
		if x == r {
			return all[(i+len(all)-1)%len(all)]
		}
	}
	return US
}

// PhoneMask returns the region's phone template. Every MaskDigit is replaced
// by a random digit; all other characters are literal.
func PhoneMask(r Region) string {
	return r.info().mask
}

// Alphabet returns the ordered set of characters typos are drawn from.
// The returned slice is a copy.
func Alphabet(r Region) []rune {
	a := r.info().alphabet
	out := make([]rune, len(a))
	copy(out, a)
	return out
}

// Intner draws uniform integers from an inclusive range.
type Intner interface {
	IntRange(min, max int) int
}

// RandomSymbol draws one character uniformly from r's alphabet.
func RandomSymbol(r Region, src Intner) rune {
	a := r.info().alphabet
	return a[src.IntRange(0, len(a)-1)]
}

// unknown regions fall back to US so callers never index a missing entry
func (r Region) info() regionInfo {
	if info, ok := regions[r]; ok {
		return info
	}
	return regions[US]
}
