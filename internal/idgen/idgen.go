package idgen

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces opaque unique identifiers for new records.
type Generator interface {
	NewID() string
}

// UUIDGenerator is the production generator.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// SequenceGenerator yields deterministic IDs for tests.
type SequenceGenerator struct {
	prefix string
	next   int
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewID() string {
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}
