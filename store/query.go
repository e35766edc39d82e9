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
Ask returns if at least one statement matches the given pattern. A
negative answer is a normal result, not an error.
*/
func (s *Store) Ask(subject *rdf.Node, predicate *rdf.Node,
	object *rdf.Node, graph *rdf.Node) bool {

	return !s.Find(subject, predicate, object, graph).IsEnd()
}

/*
Count returns the number of statements matching the given pattern.
*/
func (s *Store) Count(subject *rdf.Node, predicate *rdf.Node,
	object *rdf.Node, graph *rdf.Node) int {

	count := 0

	c := s.Find(subject, predicate, object, graph)

	for c.Get() != nil {
		count++

		if err := c.Advance(); err != nil {
			break
		}
	}

	return count
}

/*
Get returns the single unbound field of the first statement matching
the given pattern. Exactly one of subject, predicate and object must
be a wildcard; the result is nil if nothing matches.
*/
func (s *Store) Get(subject *rdf.Node, predicate *rdf.Node,
	object *rdf.Node, graph *rdf.Node) (*rdf.Node, error) {

	wildcard := -1
	wildcards := 0

	for field, node := range []*rdf.Node{subject, predicate, object} {

		if node == nil {
			wildcard = field
			wildcards++
		}
	}

	if wildcards != 1 {
		return nil, util.NewStoreError(util.ErrInvalidStatement,
			fmt.Sprintf("Get needs exactly one wildcard field - got %v", wildcards))
	}

	st := s.Find(subject, predicate, object, graph).Get()

	if st == nil {
		return nil, nil
	}

	return st.Field(wildcard), nil
}

/*
Begin returns a cursor over all statements in default order.
*/
func (s *Store) Begin() *Cursor {
	return s.Find(nil, nil, nil, nil)
}

/*
BeginOrdered returns a cursor over all statements in the given order.
The index of that order must be built.
*/
func (s *Store) BeginOrdered(order Order) (*Cursor, error) {
	if !order.IsValid() || s.indexes[order] == nil {
		return s.end, util.NewStoreError(util.ErrUnknownIndex,
			fmt.Sprintf("Order: %v", order))
	}

	c := &Cursor{
		store:    s,
		index:    s.indexes[order],
		strategy: Strategy{ScanModeAll, order, 0},
		version:  s.version,
	}

	c.settle(c.index.first())

	if c.state == cursorEnd {
		return s.end, nil
	}

	return c, nil
}

/*
End returns the universal end cursor of this store. The same terminal
value is returned by every call and by every query which found
nothing; it is never invalidated.
*/
func (s *Store) End() *Cursor {
	return s.end
}
