package store

import (
	"github.com/scrolldb/scrolldb/document"
)

// Cursor is a forward-only scan over a namespace's records.
//
// Document and Location are defined only while Ok is true. Advance is the
// only call that moves the position.
//
// Ordering rule: a caller that intends to delete or update the current
// record must capture Document and Location first, call Advance, and only
// then issue the destructive call with the captured location. Deleting or
// relocating the record the cursor still stands on would invalidate its
// onward traversal. This sequencing is a contract, not an optimization.
type Cursor interface {
	Ok() bool
	Document() document.Document
	Location() Location
	Advance()
}

// scan walks the record tree in location order. It remembers only the
// current record; Advance pivots on its location, so records deleted behind
// or even at the cursor never fault the traversal, and records inserted
// behind it are never revisited.
type scan struct {
	ns      *namespace
	current *record
}

func openScan(n *namespace) *scan {
	c := &scan{
		ns: n,
	}

	n.mutex.Lock()
	defer n.mutex.Unlock()

	c.current, _ = n.records.Min()

	return c
}

func (c *scan) Ok() bool {
	return c.current != nil
}

// Document materializes the current record's value, decoupled from any
// mutation that may happen to the record afterwards.
func (c *scan) Document() document.Document {
	return document.New(c.current.payload)
}

func (c *scan) Location() Location {
	return c.current.loc
}

func (c *scan) Advance() {
	if c.current == nil {
		return
	}

	pivot := c.current.loc
	c.current = nil

	c.ns.mutex.Lock()
	defer c.ns.mutex.Unlock()

	c.ns.records.AscendGreaterOrEqual(&record{loc: pivot + 1}, func(r *record) bool {
		c.current = r
		return false
	})
}
