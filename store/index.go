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
	"github.com/google/btree"

	"devt.de/krotik/rdfstore/rdf"
)

/*
btreeDegree is the branching factor of the index trees.
*/
const btreeDegree = 32

/*
Index is an ordered container of statement records sorted by one field
permutation. Indexes never own the statements they hold - statement
memory belongs to the store's default index.
*/
type Index struct {
	order         Order                     // Field permutation of this index
	graphTiebreak bool                      // Order graph-less statements by their graph field
	tree          *btree.BTreeG[*Statement] // Ordered statement container
}

/*
newIndex creates a new empty index for a given order. If the store
keeps graph fields then orders without a leading graph field compare
the graph as the least significant field so that statements which
differ only in their graph remain distinct in every index.
*/
func newIndex(order Order, storeGraphs bool) *Index {
	idx := &Index{
		order:         order,
		graphTiebreak: storeGraphs && !order.HasGraph(),
	}

	idx.tree = btree.NewG(btreeDegree, func(s1 *Statement, s2 *Statement) bool {
		return idx.compare(s1, s2) < 0
	})

	return idx
}

/*
Order returns the field permutation of this index.
*/
func (idx *Index) Order() Order {
	return idx.order
}

/*
Size returns the number of statements in this index.
*/
func (idx *Index) Size() int {
	return idx.tree.Len()
}

/*
compare orders two statements by this index's field permutation using
the node content order.
*/
func (idx *Index) compare(s1 *Statement, s2 *Statement) int {
	for _, field := range orderPermutations[idx.order] {

		if res := rdf.Compare(s1.nodes[field], s2.nodes[field]); res != 0 {
			return res
		}
	}

	if idx.graphTiebreak {
		return rdf.Compare(s1.nodes[FieldGraph], s2.nodes[FieldGraph])
	}

	return 0
}

/*
insert adds a statement to this index. The call is a no-op reporting
false if a statement with the same key is present already.
*/
func (idx *Index) insert(s *Statement) bool {
	if _, ok := idx.tree.Get(s); ok {
		return false
	}

	idx.tree.ReplaceOrInsert(s)

	return true
}

/*
remove deletes a statement from this index. Returns the stored record
and if it was present.
*/
func (idx *Index) remove(s *Statement) (*Statement, bool) {
	return idx.tree.Delete(s)
}

/*
lookup returns the stored record with the same key as the given
statement.
*/
func (idx *Index) lookup(s *Statement) (*Statement, bool) {
	return idx.tree.Get(s)
}

/*
first returns the smallest statement of this index or nil if the index
is empty.
*/
func (idx *Index) first() *Statement {
	if s, ok := idx.tree.Min(); ok {
		return s
	}
	return nil
}

/*
ceiling returns the smallest statement which sorts at or after the
given pivot. Pivot statements may have nil fields - a nil field sorts
before any node which makes a partially filled pivot the lower bound
of its prefix range.
*/
func (idx *Index) ceiling(pivot *Statement) *Statement {
	var res *Statement

	idx.tree.AscendGreaterOrEqual(pivot, func(s *Statement) bool {
		res = s
		return false
	})

	return res
}

/*
next returns the statement which sorts immediately after the given
statement or nil if it is the last one. The given statement does not
need to be in the index (it may just have been erased).
*/
func (idx *Index) next(s *Statement) *Statement {
	var res *Statement

	idx.tree.AscendGreaterOrEqual(s, func(item *Statement) bool {

		if idx.compare(item, s) == 0 {
			return true
		}

		res = item
		return false
	})

	return res
}

/*
matchesPrefix returns if the leading prefixLen ordering fields of a
statement are exactly the given pattern fields. Since nodes are
interned the field checks are pointer comparisons.
*/
func (idx *Index) matchesPrefix(s *Statement, pattern [4]*rdf.Node, prefixLen int) bool {
	perm := orderPermutations[idx.order]

	for i := 0; i < prefixLen && i < len(perm); i++ {

		if s.nodes[perm[i]] != pattern[perm[i]] {
			return false
		}
	}

	return true
}

/*
prefixPivot builds a pivot statement which is the lower bound of the
range of statements matching the leading prefixLen ordering fields of
the pattern.
*/
func (idx *Index) prefixPivot(pattern [4]*rdf.Node, prefixLen int) *Statement {
	var pivot Statement

	perm := orderPermutations[idx.order]

	for i := 0; i < prefixLen && i < len(perm); i++ {
		pivot.nodes[perm[i]] = pattern[perm[i]]
	}

	return &pivot
}
