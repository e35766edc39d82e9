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
	"testing"

	"devt.de/krotik/rdfstore/rdf"
)

/*
testStatement builds a statement of prefixed name nodes for index
tests.
*/
func testStatement(table *rdf.Table, subject string, predicate string,
	object string, graph string) *Statement {

	st := &Statement{}

	st.nodes[FieldSubject] = table.InternCurie(subject)
	st.nodes[FieldPredicate] = table.InternCurie(predicate)
	st.nodes[FieldObject] = table.InternCurie(object)

	if graph != "" {
		st.nodes[FieldGraph] = table.InternCurie(graph)
	}

	return st
}

func TestIndexOrdering(t *testing.T) {
	table := rdf.NewTable()

	st1 := testStatement(table, "ex:a", "ex:p1", "ex:o2", "")
	st2 := testStatement(table, "ex:a", "ex:p2", "ex:o1", "")
	st3 := testStatement(table, "ex:b", "ex:p1", "ex:o1", "")

	idx := newIndex(SPO, false)

	for _, st := range []*Statement{st3, st1, st2} {
		if !idx.insert(st) {
			t.Error("Insert should succeed for:", st)
			return
		}
	}

	if res := idx.Size(); res != 3 || idx.Order() != SPO {
		t.Error("Unexpected index state:", res)
		return
	}

	// SPO iterates subject first, then predicate

	if res := idx.first(); res != st1 {
		t.Error("Unexpected result:", res)
		return
	}

	if res := idx.next(st1); res != st2 {
		t.Error("Unexpected result:", res)
		return
	}

	if res := idx.next(st2); res != st3 {
		t.Error("Unexpected result:", res)
		return
	}

	if res := idx.next(st3); res != nil {
		t.Error("Unexpected result:", res)
		return
	}

	// An OPS index visits the same set in object order

	ops := newIndex(OPS, false)

	for _, st := range []*Statement{st1, st2, st3} {
		ops.insert(st)
	}

	if res := ops.first(); res != st2 && res != st3 {
		t.Error("Unexpected result:", res)
		return
	}

	// A duplicate insert is a no-op

	if idx.insert(st1) {
		t.Error("Duplicate insert should report false")
		return
	}

	if res := idx.Size(); res != 3 {
		t.Error("Unexpected result:", res)
		return
	}

	// Remove takes a statement out of the order

	if _, ok := idx.remove(st2); !ok {
		t.Error("Remove should succeed")
		return
	}

	if res := idx.next(st1); res != st3 {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestIndexPrefixRange(t *testing.T) {
	table := rdf.NewTable()

	st1 := testStatement(table, "ex:a", "ex:p1", "ex:o1", "")
	st2 := testStatement(table, "ex:b", "ex:p1", "ex:o1", "")
	st3 := testStatement(table, "ex:b", "ex:p2", "ex:o1", "")

	idx := newIndex(SPO, false)

	for _, st := range []*Statement{st1, st2, st3} {
		idx.insert(st)
	}

	// A pivot with only the subject bound is the lower bound of that
	// subject's range

	pattern := [4]*rdf.Node{st2.Subject(), nil, nil, nil}

	res := idx.ceiling(idx.prefixPivot(pattern, 1))

	if res != st2 {
		t.Error("Unexpected result:", res)
		return
	}

	if !idx.matchesPrefix(res, pattern, 1) || !idx.matchesPrefix(st3, pattern, 1) {
		t.Error("Prefix should match")
		return
	}

	if idx.matchesPrefix(st1, pattern, 1) {
		t.Error("Prefix should not match")
		return
	}

	// A two field pivot narrows the range further

	pattern = [4]*rdf.Node{st2.Subject(), st3.Predicate(), nil, nil}

	if res := idx.ceiling(idx.prefixPivot(pattern, 2)); res != st3 {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestIndexGraphHandling(t *testing.T) {
	table := rdf.NewTable()

	st1 := testStatement(table, "ex:a", "ex:p", "ex:o", "ex:g1")
	st2 := testStatement(table, "ex:a", "ex:p", "ex:o", "ex:g2")

	// In a graph keeping store statements which differ only in their
	// graph stay distinct in every index

	idx := newIndex(SPO, true)

	if !idx.insert(st1) || !idx.insert(st2) {
		t.Error("Inserts should succeed")
		return
	}

	if res := idx.Size(); res != 2 {
		t.Error("Unexpected result:", res)
		return
	}

	// A graph-leading index sorts by graph first

	gidx := newIndex(GSPO, true)

	gidx.insert(st2)
	gidx.insert(st1)

	if res := gidx.first(); res != st1 {
		t.Error("Unexpected result:", res)
		return
	}

	// Without graph storage the two statements have the same key

	plain := newIndex(SPO, false)

	if !plain.insert(st1) || plain.insert(st2) {
		t.Error("Second insert should be a no-op duplicate")
		return
	}
}
