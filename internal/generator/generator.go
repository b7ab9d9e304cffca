// Package generator decides the order sentences are practised in.
package generator

import (
	"math/rand"
	"time"
)

// Generator produces practice orders.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Order returns a permutation of 0..n-1, sequential unless shuffle is set.
func (g *Generator) Order(n int, shuffle bool) []int {
	if n <= 0 {
		return nil
	}
	if shuffle {
		return g.rnd.Perm(n)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
