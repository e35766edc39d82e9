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

	"devt.de/krotik/rdfstore/store/util"
)

func TestQueryFind(t *testing.T) {
	s := newTestStore(t, SPO, 0)

	// Scenario: a single inserted statement is found through a
	// subject pattern

	mustInsertCurie(t, s, "ex:a", "ex:b", "ex:c", "")

	c := s.Find(curie(s, "ex:a"), nil, nil, nil)

	st := c.Get()

	if st == nil || st.Subject() != curie(s, "ex:a") ||
		st.Predicate() != curie(s, "ex:b") || st.Object() != curie(s, "ex:c") {

		t.Error("Unexpected result:", st)
		return
	}

	if err := c.Advance(); err != nil || !c.IsEnd() {
		t.Error("Exactly one result expected:", err)
		return
	}

	// A query which matches nothing returns the end cursor - a
	// normal negative result

	if res := s.Find(curie(s, "ex:c"), nil, nil, nil); res != s.End() {
		t.Error("Unexpected result:", res)
		return
	}

	if s.Ask(curie(s, "ex:c"), nil, nil, nil) {
		t.Error("Unexpected result")
		return
	}
}

func TestQueryGet(t *testing.T) {
	s := newTestStore(t, SPO, 0)

	mustInsertCurie(t, s, "ex:a", "ex:b", "ex:c", "")

	// The single unbound field of the first match is returned

	res, err := s.Get(curie(s, "ex:a"), curie(s, "ex:b"), nil, nil)

	if err != nil || res != curie(s, "ex:c") {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = s.Get(nil, curie(s, "ex:b"), curie(s, "ex:c"), nil)

	if err != nil || res != curie(s, "ex:a") {
		t.Error("Unexpected result:", res, err)
		return
	}

	// No match is a nil result, not an error

	res, err = s.Get(curie(s, "ex:c"), curie(s, "ex:b"), nil, nil)

	if err != nil || res != nil {
		t.Error("Unexpected result:", res, err)
		return
	}

	// Any other wildcard arity is rejected

	if _, err := s.Get(curie(s, "ex:a"), nil, nil, nil); !util.IsError(err, util.ErrInvalidStatement) {
		t.Error("Unexpected result:", err)
		return
	}

	if _, err := s.Get(curie(s, "ex:a"), curie(s, "ex:b"), curie(s, "ex:c"), nil); !util.IsError(err, util.ErrInvalidStatement) {
		t.Error("Unexpected result:", err)
		return
	}
}

func TestQueryEnumeration(t *testing.T) {
	s := newTestStore(t, SPO, 0)

	// Begin on an empty store is already at the end

	if res := s.Begin(); res != s.End() {
		t.Error("Unexpected result:", res)
		return
	}

	mustInsertCurie(t, s, "ex:b", "ex:p", "ex:o", "")
	mustInsertCurie(t, s, "ex:a", "ex:p", "ex:o", "")

	// Begin visits everything in default order

	c := s.Begin()

	if st := c.Get(); st == nil || st.Subject() != curie(s, "ex:a") {
		t.Error("Unexpected result:", st)
		return
	}

	if res := c.Strategy().Mode; res != ScanModeAll {
		t.Error("Unexpected result:", res)
		return
	}

	// BeginOrdered needs a built index

	if _, err := s.BeginOrdered(POS); !util.IsError(err, util.ErrUnknownIndex) {
		t.Error("Unexpected result:", err)
		return
	}

	if err := s.AddIndex(OPS); err != nil {
		t.Error("Unexpected result:", err)
		return
	}

	c, err := s.BeginOrdered(OPS)

	if err != nil || c.Strategy().Order != OPS {
		t.Error("Unexpected result:", err)
		return
	}

	count := 0

	for c.Get() != nil {
		count++
		c.Advance()
	}

	if count != 2 {
		t.Error("Unexpected result:", count)
		return
	}
}
