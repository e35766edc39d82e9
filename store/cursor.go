/*
 * RDFStore
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package store

import (
	"fmt"

	"devt.de/krotik/rdfstore/rdf"
	"devt.de/krotik/rdfstore/store/util"
)

/*
cursorState models the lifecycle of a cursor. A cursor is either
positioned at a matching record or at the end of its scan. The third
state of the cursor protocol - invalid - is not stored but derived by
comparing the cursor's version stamp with the store version.
*/
type cursorState int

/*
Available cursor states
*/
const (
	cursorPositioned cursorState = iota // At a matching record
	cursorEnd                           // Reached the end of its scan
)

/*
Cursor is an iterator over one index of a store, restricted to one
pattern and one scan strategy. Cursors borrow into the store and own
nothing.

A cursor records the store version at its creation. Any mutation not
performed through the cursor itself bumps the store version and by
that invalidates the cursor: all further operations fail with
ErrStaleCursor without touching index memory.
*/
type Cursor struct {
	store    *Store       // Store this cursor traverses
	index    *Index       // Index this cursor walks
	pattern  [4]*rdf.Node // Bound fields (nil entries are wildcards)
	strategy Strategy     // Resolved scan strategy
	version  uint64       // Store version at creation time
	current  *Statement   // Record the cursor is positioned at
	state    cursorState  // Positioned or end
}

/*
check returns why this cursor cannot be used or nil if it is live. End
cursors stay at their terminal state across mutations; positioned
cursors are invalidated by any version bump they did not perform.
*/
func (c *Cursor) check() error {
	if c.state == cursorEnd {
		return util.NewStoreError(util.ErrEndOfCursor, "")
	}

	if c.version != c.store.version {
		return util.NewStoreError(util.ErrStaleCursor,
			fmt.Sprintf("Cursor version: %v; store version: %v",
				c.version, c.store.version))
	}

	return nil
}

/*
IsEnd returns if this cursor reached the end of its scan.
*/
func (c *Cursor) IsEnd() bool {
	return c.state == cursorEnd
}

/*
IsStale returns if this cursor was invalidated by a mutation.
*/
func (c *Cursor) IsStale() bool {
	return c.state != cursorEnd && c.version != c.store.version
}

/*
Strategy returns the scan strategy this cursor was created with.
*/
func (c *Cursor) Strategy() Strategy {
	return c.strategy
}

/*
Get returns the record this cursor is positioned at or nil if the
cursor is at its end or invalidated.
*/
func (c *Cursor) Get() *Statement {
	if c.check() != nil {
		return nil
	}

	return c.current
}

/*
Subject returns the subject of the current record or nil.
*/
func (c *Cursor) Subject() *rdf.Node {
	if st := c.Get(); st != nil {
		return st.Subject()
	}
	return nil
}

/*
Predicate returns the predicate of the current record or nil.
*/
func (c *Cursor) Predicate() *rdf.Node {
	if st := c.Get(); st != nil {
		return st.Predicate()
	}
	return nil
}

/*
Object returns the object of the current record or nil.
*/
func (c *Cursor) Object() *rdf.Node {
	if st := c.Get(); st != nil {
		return st.Object()
	}
	return nil
}

/*
Graph returns the graph of the current record or nil.
*/
func (c *Cursor) Graph() *rdf.Node {
	if st := c.Get(); st != nil {
		return st.Graph()
	}
	return nil
}

/*
Advance moves this cursor to the next record matching its pattern
under its strategy. Reaching the end of the scan is not an error; a
further Advance on an end cursor fails with ErrEndOfCursor.
*/
func (c *Cursor) Advance() error {
	if err := c.check(); err != nil {
		return err
	}

	c.settle(c.index.next(c.current))

	return nil
}

/*
Equals returns if two cursors are the same position: either both are
end cursors of the same store or both point at the same record through
the same strategy. Two cursors meeting on a record through different
indexes are not equal - their future trajectories differ.
*/
func (c *Cursor) Equals(other *Cursor) bool {
	if other == nil || c.store != other.store {
		return false
	}

	if c.state == cursorEnd && other.state == cursorEnd {
		return true
	}

	return c.state == other.state && c.current == other.current &&
		c.strategy == other.strategy && c.pattern == other.pattern
}

/*
settle positions this cursor at the first acceptable record at or
after the given candidate. Depending on the scan mode records are
accepted outright (scan), bounded by the pattern prefix (range) or
checked against the whole pattern (filtered); the cursor transitions
to its end state when the range or the index is exhausted.
*/
func (c *Cursor) settle(candidate *Statement) {
	for candidate != nil {

		switch c.strategy.Mode {

		case ScanModeAll:
			c.position(candidate)
			return

		case ScanModeRange:
			if !c.index.matchesPrefix(candidate, c.pattern, c.strategy.PrefixLen) {
				candidate = nil
				break
			}

			c.position(candidate)
			return

		case ScanModeRangeFiltered:
			if !c.index.matchesPrefix(candidate, c.pattern, c.strategy.PrefixLen) {
				candidate = nil
				break
			}

			if c.matchesPattern(candidate) {
				c.position(candidate)
				return
			}

			candidate = c.index.next(candidate)

		default: // ScanModeFullFiltered
			if c.matchesPattern(candidate) {
				c.position(candidate)
				return
			}

			candidate = c.index.next(candidate)
		}
	}

	c.current = nil
	c.state = cursorEnd
}

/*
position places this cursor on a record.
*/
func (c *Cursor) position(st *Statement) {
	c.current = st
	c.state = cursorPositioned
}

/*
matchesPattern returns if a record matches every bound field of this
cursor's pattern.
*/
func (c *Cursor) matchesPattern(st *Statement) bool {
	for field, node := range c.pattern {

		if node != nil && st.nodes[field] != node {
			return false
		}
	}

	return true
}
