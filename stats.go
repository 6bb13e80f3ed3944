// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import "fmt"

// statsString renders a human-readable summary of an engine's node table
// and operator cache occupancy, in the spirit of the diagnostic dumps the
// BuDDy lineage this engine descends from exposes for tuning cache sizes.
func statsString(e *Engine) string {
	return fmt.Sprintf(
		"nodes=%d and{hit=%d miss=%d} or{hit=%d miss=%d} ite{hit=%d miss=%d}",
		len(e.nodes),
		e.and.hits, e.and.misses,
		e.or.hits, e.or.misses,
		e.ite.hits, e.ite.misses,
	)
}
