// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import "go.uber.org/zap"

// configs stores the parameters used to build a new Engine.
type configs struct {
	nodeCapacity int         // initial capacity of the nonterminal table
	cacheSize    int         // number of entries kept in each operator cache
	logger       *zap.Logger // nil means no logging
}

func makeconfigs() *configs {
	return &configs{
		nodeCapacity: 1024,
		cacheSize:    10000,
	}
}

// Option configures an Engine at construction time. Options are applied in
// the order they are given to New.
type Option func(*configs)

// WithNodeCapacity is a configuration option. It sets a preferred initial
// capacity for the nonterminal table, to avoid reallocation when the
// approximate number of distinct nodes is known ahead of time. The table
// grows automatically as needed; this is purely a performance hint.
func WithNodeCapacity(capacity int) Option {
	return func(c *configs) {
		if capacity > 0 {
			c.nodeCapacity = capacity
		}
	}
}

// WithCacheSize is a configuration option. It sets the number of entries
// retained by each memoized operator (AND, OR, ITE). The default is 10000.
// Larger caches trade memory for fewer recomputations on repeated
// subproblems.
func WithCacheSize(size int) Option {
	return func(c *configs) {
		if size > 0 {
			c.cacheSize = size
		}
	}
}

// WithLogger is a configuration option. It attaches a structured logger to
// the engine, used to report engine creation, teardown and successful loads
// at debug level, and failed loads at warn level. Engines are silent by
// default.
func WithLogger(l *zap.Logger) Option {
	return func(c *configs) {
		c.logger = l
	}
}
