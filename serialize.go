// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import (
	"encoding/binary"
	"errors"
	"io"

	"go.uber.org/zap"
)

// wrapRead classifies a read failure: an EOF encountered mid-record means
// the stream was truncated, which the error handling design calls out as
// malformed input rather than a generic I/O failure.
func wrapRead(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return wrap(ErrMalformed, format, args...)
	}
	return wrap(err, format, args...)
}

var magicNumber = [6]byte{'I', 'P', ' ', 's', 'e', 't'}

const formatVersion uint16 = 0x0001

const headerSize = 6 + 2 + 8 + 4 // magic + version + total length + nonterminal count

// record is the on-disk shape of one nonterminal: a variable number and two
// references, each either a non-negative terminal value or a negative
// serialized node ID.
type record struct {
	Variable uint8
	Low      int32
	High     int32
}

// Save writes the set rooted at s to w using the v1 binary format: a
// 6-byte magic, a 2-byte version, an 8-byte total length, a 4-byte
// nonterminal count, and then either a single terminal value or that many
// 9-byte node records in post-order DFS order.
func (s *Set) Save(w io.Writer) error {
	return saveNode(w, s.engine, s.root)
}

func saveNode(w io.Writer, e *Engine, root NodeID) error {
	if root.IsTerminal() {
		totalLength := uint64(headerSize + 4)
		if err := writeHeader(w, totalLength, 0); err != nil {
			return err
		}
		return writeUint32(w, uint32(e.terminalValue(root)))
	}

	count := e.reachableCount(root)
	totalLength := uint64(headerSize) + uint64(count)*9
	if err := writeHeader(w, totalLength, uint32(count)); err != nil {
		return err
	}

	serialized := make(map[NodeID]int32, count)
	next := int32(-1)

	var visit func(NodeID) (int32, error)
	visit = func(id NodeID) (int32, error) {
		if id.IsTerminal() {
			return int32(e.terminalValue(id)), nil
		}
		if sid, ok := serialized[id]; ok {
			return sid, nil
		}

		v, low, high := e.node(id)

		sLow, err := visit(low)
		if err != nil {
			return 0, err
		}
		sHigh, err := visit(high)
		if err != nil {
			return 0, err
		}

		sid := next
		next--

		rec := record{Variable: v, Low: sLow, High: sHigh}
		if err := binary.Write(w, binary.BigEndian, rec); err != nil {
			return 0, wrap(err, "writing node record")
		}

		serialized[id] = sid
		return sid, nil
	}

	_, err := visit(root)
	return err
}

func writeHeader(w io.Writer, totalLength uint64, count uint32) error {
	if _, err := w.Write(magicNumber[:]); err != nil {
		return wrap(err, "writing magic number")
	}
	if err := binary.Write(w, binary.BigEndian, formatVersion); err != nil {
		return wrap(err, "writing format version")
	}
	if err := binary.Write(w, binary.BigEndian, totalLength); err != nil {
		return wrap(err, "writing total length")
	}
	return binary.Write(w, binary.BigEndian, count)
}

func writeUint32(w io.Writer, v uint32) error {
	return binary.Write(w, binary.BigEndian, v)
}

// Load reads a binary-format set from r into engine e, re-canonicalizing
// every node through the engine's ordinary hash-consing path (nonterminal)
// so that loading into an engine with overlapping existing structure
// correctly shares nodes.
func Load(e *Engine, r io.Reader) (*Set, error) {
	s, err := load(e, r)
	if err != nil {
		e.logger().Warn("load failed", zap.Error(err))
		return nil, err
	}
	e.logger().Debug("set loaded", zap.Int("nodes", e.reachableCount(s.root)))
	return s, nil
}

func load(e *Engine, r io.Reader) (*Set, error) {
	e.checkOpen()

	var magic [6]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, wrapRead(err, "reading magic number")
	}
	if magic != magicNumber {
		return nil, wrap(ErrMalformed, "bad magic number %q", magic)
	}

	var version uint16
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return nil, wrapRead(err, "reading format version")
	}
	if version != formatVersion {
		return nil, wrap(ErrUnsupportedVersion, "version %#04x", version)
	}

	var totalLength uint64
	if err := binary.Read(r, binary.BigEndian, &totalLength); err != nil {
		return nil, wrapRead(err, "reading total length")
	}
	if totalLength < headerSize {
		return nil, wrap(ErrMalformed, "total length %d shorter than header", totalLength)
	}
	remaining := int64(totalLength) - headerSize

	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, wrapRead(err, "reading nonterminal count")
	}

	if count == 0 {
		var value uint32
		if err := binary.Read(r, binary.BigEndian, &value); err != nil {
			return nil, wrapRead(err, "reading terminal value")
		}
		remaining -= 4
		if remaining != 0 {
			return nil, wrap(ErrMalformed, "%d trailing bytes after terminal set", remaining)
		}
		return fromRoot(e, e.terminal(int(value))), nil
	}

	table := make([]NodeID, count)
	var root NodeID

	for i := uint32(0); i < count; i++ {
		var rec record
		if err := binary.Read(r, binary.BigEndian, &rec); err != nil {
			return nil, wrapRead(err, "reading node record %d", i)
		}
		remaining -= 9
		if remaining < 0 {
			return nil, wrap(ErrMalformed, "stream truncated before record %d", i)
		}

		low, err := resolveReference(table[:i], rec.Low)
		if err != nil {
			return nil, err
		}
		high, err := resolveReference(table[:i], rec.High)
		if err != nil {
			return nil, err
		}

		id := e.nonterminal(rec.Variable, low, high)
		table[i] = id
		root = id
	}

	if remaining != 0 {
		return nil, wrap(ErrMalformed, "%d trailing bytes after node table", remaining)
	}

	return fromRoot(e, root), nil
}

// resolveReference maps an on-disk reference to an engine node identifier:
// non-negative values are terminal values, negative values are serialized
// IDs indexing into the table of nodes already materialized in this load.
func resolveReference(table []NodeID, ref int32) (NodeID, error) {
	if ref >= 0 {
		return NodeID(ref), nil
	}
	index := int(-ref) - 1
	if index < 0 || index >= len(table) {
		return 0, wrap(ErrMalformed, "reference to unassigned serialized ID %d", ref)
	}
	return table[index], nil
}
