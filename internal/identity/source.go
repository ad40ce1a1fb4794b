package identity

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/zarlcorp/zfake/internal/locale"
)

// streamSalt is the fixed second PCG word. Changing it changes every record.
const streamSalt = 0x5eed_7a81_c0de_f00d

// Source is a reseedable, deterministic stream of locale-scoped facts.
// Every draw advances the same stream, so the sequence after Reseed(n) is
// always the same for a given region.
type Source struct {
	region locale.Region
	corpus corpus
	pcg    *rand.PCG
	rng    *rand.Rand
}

// NewSource returns a stream for region seeded with seed.
func NewSource(region locale.Region, seed int64) *Source {
	pcg := rand.NewPCG(uint64(seed), streamSalt)
	return &Source{
		region: region,
		corpus: corpusFor(region),
		pcg:    pcg,
		rng:    rand.New(pcg),
	}
}

// Region returns the locale the source draws facts from.
func (s *Source) Region() locale.Region {
	return s.region
}

// Reseed restarts the stream from seed. Any int64 is valid, including 0
// and negatives.
func (s *Source) Reseed(seed int64) {
	s.pcg.Seed(uint64(seed), streamSalt)
}

// IntRange returns a uniform integer in [min, max]. Swapped bounds are
// tolerated.
func (s *Source) IntRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.rng.IntN(max-min+1)
}

// UUID draws a version 4 UUID from the stream.
func (s *Source) UUID() string {
	id, err := uuid.NewRandomFromReader(streamReader{s.rng})
	if err != nil {
		// streamReader never fails
		return uuid.Nil.String()
	}
	return id.String()
}

// FullName draws a first and last name of the same gender.
func (s *Source) FullName() string {
	c := s.corpus
	if s.IntRange(0, 1) == 0 {
		return s.pick(c.maleFirst) + " " + s.pick(c.maleLast)
	}
	last := c.maleLast
	if c.femaleLast != nil {
		last = c.femaleLast
	}
	return s.pick(c.femaleFirst) + " " + s.pick(last)
}

// City draws a city name.
func (s *Source) City() string {
	return s.pick(s.corpus.cities)
}

// StreetAddress draws a street address in the locale's usual shape.
func (s *Source) StreetAddress() string {
	c := s.corpus
	switch s.region {
	case locale.Russia:
		// "ул. Ленина, 12"
		return s.pick(c.streetSuffixes) + " " + s.pick(c.streets) + ", " + s.fill("##")
	case locale.Germany:
		// "Lindenallee 7"
		return s.pick(c.streets) + s.pick(c.streetSuffixes) + " " + s.fill(s.pick([]string{"#", "##", "###"}))
	default:
		// "1234 Oak Ave"
		return s.fill(s.pick([]string{"###", "####"})) + " " + s.pick(c.streets) + " " + s.pick(c.streetSuffixes)
	}
}

// CityAndStreet draws a city and a street address joined by a comma.
func (s *Source) CityAndStreet() string {
	city := s.City()
	return city + ", " + s.StreetAddress()
}

// BuildingNumber draws a building or apartment number.
func (s *Source) BuildingNumber() string {
	return s.fill(s.pick(s.corpus.buildingMasks))
}

// PhoneDigits replaces every locale.MaskDigit in mask with a random digit
// and keeps every other character.
func (s *Source) PhoneDigits(mask string) string {
	return s.fill(mask)
}

func (s *Source) fill(mask string) string {
	var b strings.Builder
	b.Grow(len(mask))
	for _, r := range mask {
		if r == locale.MaskDigit {
			b.WriteByte(byte('0' + s.IntRange(0, 9)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Source) pick(from []string) string {
	return from[s.IntRange(0, len(from)-1)]
}

// streamReader adapts the stream to io.Reader for uuid generation.
type streamReader struct {
	rng *rand.Rand
}

func (r streamReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.Uint32())
	}
	return len(p), nil
}
