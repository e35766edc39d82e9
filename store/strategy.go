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

	"devt.de/krotik/common/logutil"
	"devt.de/krotik/common/stringutil"
	"devt.de/krotik/rdfstore/rdf"
)

/*
storeLog is the logger of the store package.
*/
var storeLog = logutil.GetLogger("rdfstore.store")

/*
ScanMode describes how a cursor walks its index.
*/
type ScanMode int

/*
Available scan modes
*/
const (
	ScanModeAll           ScanMode = iota // Accept every record of the index
	ScanModeRange                         // Bounded range - the prefix covers all bound fields
	ScanModeRangeFiltered                 // Bounded range with residual filtering
	ScanModeFullFiltered                  // Full scan with filtering (O(n) fallback)
)

/*
Names of scan modes (for debugging output)
*/
var scanModeNames = map[ScanMode]string{
	ScanModeAll:           "scan",
	ScanModeRange:         "range",
	ScanModeRangeFiltered: "range-filtered",
	ScanModeFullFiltered:  "full-filtered",
}

/*
String returns the name of this scan mode.
*/
func (m ScanMode) String() string {
	if name, ok := scanModeNames[m]; ok {
		return name
	}
	return "unknown"
}

/*
Strategy is the resolved scan plan for one query pattern: the index
order to walk, how to walk it and how many leading ordering fields are
exactly bound by the pattern.
*/
type Strategy struct {
	Mode      ScanMode // How the index is walked
	Order     Order    // Index order to walk
	PrefixLen int      // Number of exactly bound leading ordering fields
}

/*
String returns a string representation of this strategy (for debugging
purposes).
*/
func (st Strategy) String() string {
	return fmt.Sprintf("%v on %v (prefix %v)", st.Mode, st.Order, st.PrefixLen)
}

/*
strategyCandidate is one entry of the tiered candidate tables: an
index order and the pattern prefix it can serve.
*/
type strategyCandidate struct {
	order  Order // Candidate index order
	prefix int   // Leading ordering fields bound under this order
}

/*
Signature bits for bound pattern fields
*/
const (
	sigSubject   = 1
	sigPredicate = 2
	sigObject    = 4
)

/*
strategyCandidates holds for every bound-field signature the candidate
orders in preference tiers: perfect preferred orders (SPO, SOP, OPS,
PSO), perfect alternate orders (OSP, POS), then partial-prefix
preferred and alternate orders which need residual filtering for the
remaining bound fields. The first candidate whose index exists wins -
an existing index always beats a hypothetically better absent one.
*/
var strategyCandidates = [8][]strategyCandidate{

	// No bound fields - handled as a plain scan

	sigSubject: {
		{SPO, 1}, {SOP, 1},
	},
	sigPredicate: {
		{PSO, 1}, {POS, 1},
	},
	sigSubject | sigPredicate: {
		{SPO, 2}, {PSO, 2}, {SOP, 1}, {POS, 1},
	},
	sigObject: {
		{OPS, 1}, {OSP, 1},
	},
	sigSubject | sigObject: {
		{SOP, 2}, {OSP, 2}, {SPO, 1}, {OPS, 1},
	},
	sigPredicate | sigObject: {
		{OPS, 2}, {POS, 2}, {PSO, 1}, {OSP, 1},
	},
	sigSubject | sigPredicate | sigObject: {
		{SPO, 3}, {SOP, 3}, {OPS, 3}, {PSO, 3}, {OSP, 3}, {POS, 3},
	},
}

/*
selectStrategy picks the least-cost scan plan for a pattern given the
indexes which are currently built. The graph field is handled
separately from the subject / predicate / object signature: a bound
graph upgrades the chosen order to its graph-qualified counterpart if
that index exists, otherwise any graph-prefixed index is used before
the final fallback - a full scan of the default index with filtering.
*/
func (s *Store) selectStrategy(pattern [4]*rdf.Node) Strategy {
	graph := pattern[FieldGraph]

	sig := 0
	bound := 0

	if pattern[FieldSubject] != nil {
		sig |= sigSubject
		bound++
	}
	if pattern[FieldPredicate] != nil {
		sig |= sigPredicate
		bound++
	}
	if pattern[FieldObject] != nil {
		sig |= sigObject
		bound++
	}

	if sig == 0 {

		if graph == nil {

			// Nothing is bound - enumerate the default index

			return Strategy{ScanModeAll, s.defaultOrder, 0}
		}

		// Only the graph is bound - any graph-prefixed index serves
		// the pattern with a perfect one field prefix

		if gOrder, ok := s.graphOrder(s.defaultOrder); ok {
			return Strategy{ScanModeRange, gOrder, 1}
		}

		return s.fullScanFallback(pattern)
	}

	for _, candidate := range strategyCandidates[sig] {

		// A bound graph prefers the graph-qualified version of the
		// candidate order (one more exactly bound leading field)

		if graph != nil && s.indexes[candidate.order.WithGraph()] != nil {
			return s.rangeStrategy(candidate.order.WithGraph(),
				candidate.prefix+1, bound+1)
		}

		if s.indexes[candidate.order] != nil {
			boundTotal := bound
			if graph != nil {
				boundTotal++
			}
			return s.rangeStrategy(candidate.order, candidate.prefix, boundTotal)
		}
	}

	// No candidate order is built - a bound graph can still restrict
	// the scan to one graph on any graph-prefixed index

	if graph != nil {
		if gOrder, ok := s.graphOrder(s.defaultOrder); ok {
			return s.rangeStrategy(gOrder, 1, bound+1)
		}
	}

	return s.fullScanFallback(pattern)
}

/*
rangeStrategy builds a range strategy; residual filtering is needed
whenever the prefix does not cover all bound fields.
*/
func (s *Store) rangeStrategy(order Order, prefix int, bound int) Strategy {
	if prefix < bound {
		return Strategy{ScanModeRangeFiltered, order, prefix}
	}

	return Strategy{ScanModeRange, order, prefix}
}

/*
graphOrder returns a built graph-prefixed index order, preferring the
graph-qualified counterpart of the given order.
*/
func (s *Store) graphOrder(preferred Order) (Order, bool) {
	if s.indexes[preferred.WithGraph()] != nil {
		return preferred.WithGraph(), true
	}

	for order := GSPO; order < NumOrders; order++ {

		if s.indexes[order] != nil {
			return order, true
		}
	}

	return 0, false
}

/*
fullScanFallback builds the last resort strategy: a full scan of the
default index with filtering. This path is O(n) and emits a
performance warning.
*/
func (s *Store) fullScanFallback(pattern [4]*rdf.Node) Strategy {
	size := s.Size()

	storeLog.Warning(fmt.Sprintf(
		"No index supports pattern %v - falling back to a linear scan of %v statement%s",
		patternString(pattern), size, stringutil.Plural(size)))

	return Strategy{ScanModeFullFiltered, s.defaultOrder, 0}
}

/*
patternString renders a query pattern (for diagnostics).
*/
func patternString(pattern [4]*rdf.Node) string {
	res := make([]interface{}, 4)

	for i, node := range pattern {
		if node == nil {
			res[i] = "*"
		} else {
			res[i] = node
		}
	}

	return fmt.Sprintf("(%v %v %v %v)", res[0], res[1], res[2], res[3])
}
