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
)

func TestOrders(t *testing.T) {

	// Every order has a permutation over distinct fields and a name

	for order := SPO; order < NumOrders; order++ {

		if !order.IsValid() {
			t.Error("Order should be valid:", int(order))
			return
		}

		perm := order.Permutation()
		seen := make(map[int]bool)

		for _, field := range perm {
			if seen[field] {
				t.Error("Duplicate field in permutation of", order)
				return
			}
			seen[field] = true
		}

		if order.HasGraph() {

			if len(perm) != 4 || perm[0] != FieldGraph {
				t.Error("Graph order should lead with the graph field:", order)
				return
			}

		} else if len(perm) != 3 {
			t.Error("Unexpected permutation length for", order)
			return
		}
	}

	// Graph qualification is a fixed offset in both directions

	if res := SPO.WithGraph(); res != GSPO {
		t.Error("Unexpected result:", res)
		return
	}

	if res := GPOS.TripleOrder(); res != POS {
		t.Error("Unexpected result:", res)
		return
	}

	if res := GOSP.WithGraph(); res != GOSP {
		t.Error("Unexpected result:", res)
		return
	}

	if res := POS.TripleOrder(); res != POS {
		t.Error("Unexpected result:", res)
		return
	}

	// A graph order sorts by the same triple permutation after its
	// graph field

	for order := GSPO; order < NumOrders; order++ {
		perm := order.Permutation()
		triplePerm := order.TripleOrder().Permutation()

		for i, field := range triplePerm {
			if perm[i+1] != field {
				t.Error("Permutation mismatch between", order, "and", order.TripleOrder())
				return
			}
		}
	}

	if res := SPO.String(); res != "spo" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := GPSO.String(); res != "gpso" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Order(-1).String(); res != "unknown" {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestFlags(t *testing.T) {
	flags := FlagStoreGraphs | FlagKeepCarets

	if !flags.StoreGraphs() || !flags.KeepCarets() {
		t.Error("Unexpected flag result")
		return
	}

	if Flags(0).StoreGraphs() || Flags(0).KeepCarets() {
		t.Error("Unexpected flag result")
		return
	}
}
