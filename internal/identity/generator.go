package identity

import (
	"github.com/zarlcorp/zfake/internal/locale"
	"github.com/zarlcorp/zfake/internal/typo"
)

// fields whose typo decisions are seeded independently
const (
	fieldName = iota
	fieldAddress
	fieldPhone
)

// fieldStride separates per-field typo seeds. A typo round reseeds at most
// 300*9 above its field seed, so strides never overlap within a record.
const fieldStride = 1 << 20

// Generator produces user records. It holds no state; every call builds
// its own stream, so records can be generated in any order.
type Generator struct{}

// New creates a generator.
func New() *Generator {
	return &Generator{}
}

// Generate produces the record at offset for opts. The result depends only
// on opts and offset.
func (g *Generator) Generate(opts Options, offset int64) User {
	seed := opts.Seed + offset
	src := NewSource(opts.Region, seed)

	id := src.UUID()
	name := src.FullName()
	address := src.CityAndStreet() + ", " + src.BuildingNumber()
	phone := src.PhoneDigits(locale.PhoneMask(opts.Region))

	inj := typo.New(opts.Region, src)
	rate := ClampRate(opts.MistakeRate)

	return User{
		ID:      id,
		Name:    inj.Apply(name, FieldSeed(seed, fieldName), rate),
		Address: inj.Apply(address, FieldSeed(seed, fieldAddress), rate),
		Phone:   inj.Apply(phone, FieldSeed(seed, fieldPhone), rate),
	}
}

// Batch generates n consecutive records starting at offset start.
func (g *Generator) Batch(opts Options, start int64, n int) []User {
	if n <= 0 {
		return nil
	}
	users := make([]User, 0, n)
	for i := range n {
		users = append(users, g.Generate(opts, start+int64(i)))
	}
	return users
}

// FieldSeed derives the typo seed of one field from a record seed.
func FieldSeed(seed int64, field int) int64 {
	return seed + int64(field)*fieldStride
}
