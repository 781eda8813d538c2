package builder

import (
	"math/rand"

	"github.com/katalvlaran/mincut/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng          *rand.Rand // nil means no randomness available
	multiplicity int        // copies per emitted edge, ≥ 1
	shuffle      bool       // relabel vertices after construction
}

// defaultMultiplicity keeps simple graphs simple.
const defaultMultiplicity = 1

// newBuilderConfig applies options in order; later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{multiplicity: defaultMultiplicity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// draft accumulates vertices and edges while constructors run.
type draft struct {
	n     int
	edges []core.Edge
}

// addVertices reserves k fresh vertices and returns the first index.
func (d *draft) addVertices(k int) int {
	base := d.n
	d.n += k

	return base
}

// link emits the edge u–v cfg.multiplicity times.
func (d *draft) link(cfg builderConfig, u, v int) {
	for i := 0; i < cfg.multiplicity; i++ {
		d.edges = append(d.edges, core.Edge{U: u, V: v})
	}
}
