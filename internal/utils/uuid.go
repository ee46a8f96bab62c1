package utils

import "github.com/google/uuid"

// UUIDGenerator produces request trace ids. Time-ordered v7 ids are
// preferred; a random v4 id is returned if v7 generation fails.
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
