package ident

import "crypto/rand"

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
)

// Generator produces booking references: two uppercase letters followed by
// three digits. The format is guaranteed here, uniqueness is the caller's
// concern.
type Generator interface {
	BookingRef() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) BookingRef() (string, error) {
	// Make a slice of random bytes, one per output character.
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	for i := 0; i < 2; i++ {
		buf[i] = letters[int(buf[i])%len(letters)]
	}
	for i := 2; i < 5; i++ {
		buf[i] = digits[int(buf[i])%len(digits)]
	}
	return string(buf), nil
}

var _ Generator = (*RandomGenerator)(nil)
