package fcp

import "fmt"

// IDGenerator hands out sequential ids such as ts1, ts2, ...
type IDGenerator struct {
	prefix    string
	nextIndex int
}

func NewIDGenerator(prefix string) *IDGenerator {
	return &IDGenerator{prefix: prefix, nextIndex: 1}
}

// ReserveID returns the next id in sequence.
func (g *IDGenerator) ReserveID() string {
	id := fmt.Sprintf("%s%d", g.prefix, g.nextIndex)
	g.nextIndex++
	return id
}
