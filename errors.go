// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import (
	"github.com/pkg/errors"
)

// Error kinds recognized by the engine. They describe a taxonomy, not a set
// of concrete types: every error the package raises itself wraps one of
// these sentinels and can be tested with errors.Is. Failures of the
// underlying reader or writer are returned wrapped but not reclassified,
// except that an unexpected end of stream during a load counts as
// ErrMalformed. ErrClosed and ErrCrossEngine are used as panic values.
var (
	// ErrMalformed reports a corrupt or truncated serialized set: bad
	// magic, length mismatch, a stream that ends early, or a reference to
	// a serialized node ID that was never assigned. An unknown version is
	// reported as ErrUnsupportedVersion instead. ErrMalformed is also
	// returned for an invalid address passed to Set.Add or Map.Set.
	ErrMalformed = errors.New("ipbdd: malformed set")

	// ErrUnsupportedVersion reports a binary format version this engine
	// does not know how to read.
	ErrUnsupportedVersion = errors.New("ipbdd: unsupported format version")

	// ErrClosed is the panic value raised by operations that check the
	// engine's state (such as NewSet, Set.Add, Set.Contains, And, Or, Ite
	// and Load) when called after Teardown. Not every operation performs
	// this check.
	ErrClosed = errors.New("ipbdd: engine is closed")

	// ErrCrossEngine reports an attempt to mix node identifiers sourced
	// from two different engines. The engine does not validate this on
	// every call (it would defeat the purpose of a tagged-integer node
	// ID); it is raised opportunistically where cheap to detect, such as
	// Set.Equal and Map.Equal comparing roots across engines.
	ErrCrossEngine = errors.New("ipbdd: node identifier belongs to a different engine")
)

// wrap annotates err with a message, preserving the sentinel chain so that
// errors.Is still matches against the kinds above. Returns nil if err is
// nil.
func wrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}
