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

	"devt.de/krotik/common/errorutil"
	"devt.de/krotik/rdfstore/rdf"
	"devt.de/krotik/rdfstore/store/util"
)

/*
Store is an in-memory RDF statement store. It owns the node table, the
statement records (through its default index) and up to twelve ordered
indexes which all contain the identical statement set.

A store is a single-writer structure: mutating operations (Insert,
Erase, Clear, AddIndex, DropIndex) require exclusive access and bump
the store version which invalidates all outstanding cursors except the
one a mutation was performed through.
*/
type Store struct {
	nodes        *rdf.Table        // Node interning table
	indexes      [NumOrders]*Index // Index slots (most are nil)
	defaultOrder Order             // Order of the owning index
	flags        Flags             // Behavior flags
	version      uint64            // Bumped on every successful mutation
	end          *Cursor           // Shared terminal cursor
}

/*
New creates a new statement store with exactly one index of the given
default order. If the store does not keep graph fields the default
order is reduced to its triple order.
*/
func New(defaultOrder Order, flags Flags) (*Store, error) {
	if !defaultOrder.IsValid() {
		return nil, util.NewStoreError(util.ErrUnknownIndex,
			fmt.Sprintf("Order: %v", int(defaultOrder)))
	}

	if !flags.StoreGraphs() {
		defaultOrder = defaultOrder.TripleOrder()
	}

	s := &Store{
		nodes:        rdf.NewTable(),
		defaultOrder: defaultOrder,
		flags:        flags,
	}

	s.indexes[defaultOrder] = newIndex(defaultOrder, flags.StoreGraphs())
	s.end = &Cursor{store: s, state: cursorEnd}

	return s, nil
}

/*
Nodes returns the node table of this store. External callers intern
query and statement nodes through this table.
*/
func (s *Store) Nodes() *rdf.Table {
	return s.nodes
}

/*
DefaultOrder returns the order of the owning index.
*/
func (s *Store) DefaultOrder() Order {
	return s.defaultOrder
}

/*
Flags returns the behavior flags of this store.
*/
func (s *Store) Flags() Flags {
	return s.flags
}

/*
Size returns the number of statements in this store.
*/
func (s *Store) Size() int {
	return s.indexes[s.defaultOrder].Size()
}

/*
IsEmpty returns if this store holds no statements.
*/
func (s *Store) IsEmpty() bool {
	return s.Size() == 0
}

/*
Version returns the current version of this store. The version is
bumped on every successful insert or erase.
*/
func (s *Store) Version() uint64 {
	return s.version
}

/*
HasIndex returns if an index of the given order is built.
*/
func (s *Store) HasIndex(order Order) bool {
	return order.IsValid() && s.indexes[order] != nil
}

/*
AddIndex builds a new index of the given order and populates it with
every statement of the default index. The new index only becomes part
of the store once it is fully populated - a failure during population
leaves the store unchanged.
*/
func (s *Store) AddIndex(order Order) error {
	if !order.IsValid() {
		return util.NewStoreError(util.ErrUnknownIndex,
			fmt.Sprintf("Order: %v", int(order)))
	}

	if order.HasGraph() && !s.flags.StoreGraphs() {
		return util.NewStoreError(util.ErrUnknownIndex,
			fmt.Sprintf("Store does not keep graphs - order %v is not available", order))
	}

	if s.indexes[order] != nil {
		return util.NewStoreError(util.ErrIndexExists,
			fmt.Sprintf("Order: %v", order))
	}

	idx := newIndex(order, s.flags.StoreGraphs())

	var failed *Statement

	s.indexes[s.defaultOrder].tree.Ascend(func(item *Statement) bool {

		if !idx.insert(item) {
			failed = item
			return false
		}

		return true
	})

	if failed != nil {

		// The partially built index is discarded as a whole - it was
		// never visible to queries

		return util.NewStoreError(util.ErrNotAllocated,
			fmt.Sprintf("Could not copy %v into the new index", failed))
	}

	s.indexes[order] = idx

	return nil
}

/*
DropIndex removes the index of the given order. The default index
cannot be removed; the statements themselves are untouched since they
are owned by the default index.
*/
func (s *Store) DropIndex(order Order) error {
	if order == s.defaultOrder {
		return util.NewStoreError(util.ErrDefaultIndex,
			fmt.Sprintf("Order: %v", order))
	}

	if !order.IsValid() || s.indexes[order] == nil {
		return util.NewStoreError(util.ErrUnknownIndex,
			fmt.Sprintf("Order: %v", order))
	}

	s.indexes[order] = nil

	return nil
}

/*
Insert adds a statement to this store. All nodes must be interned in
this store's node table; the store takes its own references for the
inserted statement. If the store does not keep graph fields the graph
is dropped - a further insert with equal subject, predicate and object
under any graph is then a duplicate.

The insert is atomic from the caller's point of view: a duplicate is
rejected by the owning index before any other index is touched and the
statement is freed again.
*/
func (s *Store) Insert(subject *rdf.Node, predicate *rdf.Node,
	object *rdf.Node, graph *rdf.Node, caret *Caret) error {

	if err := ValidateStatement(subject, predicate, object, graph); err != nil {
		return err
	}

	for _, node := range []*rdf.Node{subject, predicate, object, graph} {

		if node != nil && !node.IsResolved() {
			return util.NewStoreError(util.ErrUnresolvedNode,
				fmt.Sprintf("Node: %v", node))
		}
	}

	if !s.flags.StoreGraphs() {

		// Graph contexts are not kept - the graph field is dropped
		// on insert

		graph = nil
	}

	st := &Statement{}
	st.nodes[FieldSubject] = s.nodes.Ref(subject)
	st.nodes[FieldPredicate] = s.nodes.Ref(predicate)
	st.nodes[FieldObject] = s.nodes.Ref(object)
	st.nodes[FieldGraph] = s.nodes.Ref(graph)

	if caret != nil && s.flags.KeepCarets() {
		st.caret = &Caret{s.nodes.Ref(caret.Document), caret.Line, caret.Column}
	}

	// The owning index decides about duplicates

	if !s.indexes[s.defaultOrder].insert(st) {
		s.freeStatement(st)

		return util.NewStoreError(util.ErrDuplicate,
			fmt.Sprintf("Statement: %v", st))
	}

	// A duplicate in any further index is a successful no-op there

	for order, idx := range s.indexes {

		if idx != nil && Order(order) != s.defaultOrder {
			idx.insert(st)
		}
	}

	s.version++

	return nil
}

/*
Erase removes the statement the given cursor points to from all
indexes, frees the statement and advances the cursor to its logical
successor. The erasing cursor is re-synchronized to the new store
version; every other outstanding cursor is invalidated.
*/
func (s *Store) Erase(c *Cursor) error {
	errorutil.AssertTrue(c != nil && c.store == s,
		"Cursor does not belong to this store")

	if err := c.check(); err != nil {
		return err
	}

	victim := c.current

	for _, idx := range s.indexes {

		if idx != nil {
			idx.remove(victim)
		}
	}

	s.version++

	// Re-synchronize the erasing cursor and move it to the next
	// match under its own strategy before the record is freed

	c.version = s.version
	c.settle(c.index.next(victim))

	s.freeStatement(victim)

	return nil
}

/*
Clear removes all statements from this store. Every statement is freed
exactly once through the default index regardless of how many further
indexes reference it.
*/
func (s *Store) Clear() {
	owned := make([]*Statement, 0, s.Size())

	s.indexes[s.defaultOrder].tree.Ascend(func(item *Statement) bool {
		owned = append(owned, item)
		return true
	})

	for order, idx := range s.indexes {

		if idx != nil {
			s.indexes[order] = newIndex(Order(order), s.flags.StoreGraphs())
		}
	}

	for _, st := range owned {
		s.freeStatement(st)
	}

	s.version++
}

/*
Find returns a cursor positioned at the first statement matching the
given pattern (nil fields are wildcards) or the store's end cursor if
nothing matches. The cheapest available scan is picked by the strategy
selector.
*/
func (s *Store) Find(subject *rdf.Node, predicate *rdf.Node,
	object *rdf.Node, graph *rdf.Node) *Cursor {

	if !s.flags.StoreGraphs() {

		// The graph field was dropped on insert so it cannot
		// restrict a query

		graph = nil
	}

	pattern := [4]*rdf.Node{subject, predicate, object, graph}

	strategy := s.selectStrategy(pattern)

	c := &Cursor{
		store:    s,
		index:    s.indexes[strategy.Order],
		pattern:  pattern,
		strategy: strategy,
		version:  s.version,
	}

	switch strategy.Mode {

	case ScanModeRange, ScanModeRangeFiltered:
		c.settle(c.index.ceiling(c.index.prefixPivot(pattern, strategy.PrefixLen)))

	default:
		c.settle(c.index.first())
	}

	if c.state == cursorEnd {
		return s.end
	}

	return c
}

/*
freeStatement releases the node references of a statement. After the
call the statement must no longer be reachable through any index.
*/
func (s *Store) freeStatement(st *Statement) {
	for _, node := range st.nodes {
		s.nodes.Deref(node)
	}

	if st.caret != nil {
		s.nodes.Deref(st.caret.Document)
	}
}

/*
String returns a string representation of this store (for debugging
purposes).
*/
func (s *Store) String() string {
	built := make([]string, 0, NumOrders)

	for _, idx := range s.indexes {

		if idx != nil {
			built = append(built, idx.order.String())
		}
	}

	return fmt.Sprintf("Store (%v statements, default %v, indexes %v)",
		s.Size(), s.defaultOrder, built)
}
