package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for records, accounts, and log
// entries. Version 7 is preferred for its time-ordered prefix, with a
// random v4 fallback when the system clock is unusable.
type UUIDGenerator struct{}

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
