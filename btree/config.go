package btree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// DefaultDegree is the minimum degree used when a config does not name one.
const DefaultDegree = 12

// Config configures a B-tree.
type Config struct {
	// Degree is the minimum degree t of the tree. Every node stores at most
	// 2t-1 keys, every non-root node at least t-1. Zero selects
	// DefaultDegree; values below 2 are rejected.
	Degree int
}

func (cfg Config) normalized() Config {
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Degree < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidDegree, cfg.Degree)
	}
	return nil
}

// tracer writes to trace with key 'ordset'
func tracer() tracing.Trace {
	return tracing.Select("ordset")
}
