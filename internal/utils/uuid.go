package utils

import "github.com/google/uuid"

// UUIDGenerator produces record identifiers. UUIDv7 is preferred because its
// time-ordered prefix keeps database indexes dense; the random v4 form is a
// fallback when the v7 constructor fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
