/*
 * RDFStore
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package store contains the in-memory RDF statement store.

Store API

The main API is provided by a Store object which can be created with
the New() constructor function. The store holds statements (subject,
predicate, object and optional graph) in up to twelve simultaneously
maintained ordered indexes - six field permutations, each available
with or without a leading graph field. Exactly one index, the default
index, is always present and owns the statement records; all further
indexes hold the same records in a different order and can be added
and removed at runtime through AddIndex() and DropIndex().

Nodes are interned through the store's node table (see the rdf
package) so statement fields are shared canonical instances and field
comparisons during index traversal are pointer comparisons first.

Queries

Find() takes a pattern of bound and wildcard fields and returns a
Cursor positioned at the first matching statement. A cost-based
strategy selector picks the cheapest available scan for the pattern:
a range scan on an index whose leading fields match the bound fields,
a range scan with residual filtering, a scan restricted to a graph, or
as a last resort a full scan of the default index with filtering. The
convenience functions Ask(), Count() and Get() are defined on top of
Find().

Cursors

A Cursor is bound to one index, one pattern, one scan strategy and the
store's version at creation time. Every mutation of the store bumps
the version and by that invalidates all outstanding cursors except the
cursor through which the mutation was performed - Erase() repositions
the erasing cursor on its logical successor. Operations on an
invalidated cursor fail with ErrStaleCursor and never touch index
memory.

Ingest

A Sink accepts statement events from a streaming source (e.g. a
parser), interns the nodes, validates structural constraints and
inserts the statement, reporting success, duplicate or a validation
failure per event.
*/
package store

/*
VERSION of the statement store
*/
const VERSION = 1

/*
Field positions within a statement
*/
const (
	FieldSubject   = 0
	FieldPredicate = 1
	FieldObject    = 2
	FieldGraph     = 3
)

/*
Order designates one of the twelve index orders: a permutation of
subject, predicate and object, optionally qualified with a leading
graph field. The enum is closed - the strategy selection tables and
the graph qualification offset depend on the exact values.
*/
type Order int

/*
Available index orders
*/
const (
	SPO Order = iota // Subject, predicate, object
	SOP              // Subject, object, predicate
	OPS              // Object, predicate, subject
	OSP              // Object, subject, predicate
	PSO              // Predicate, subject, object
	POS              // Predicate, object, subject
	GSPO             // Graph, subject, predicate, object
	GSOP             // Graph, subject, object, predicate
	GOPS             // Graph, object, predicate, subject
	GOSP             // Graph, object, subject, predicate
	GPSO             // Graph, predicate, subject, object
	GPOS             // Graph, predicate, object, subject
)

/*
NumOrders is the total number of index orders.
*/
const NumOrders = 12

/*
graphOrderOffset is the fixed distance between a triple order and its
graph-qualified counterpart.
*/
const graphOrderOffset = 6

/*
orderPermutations maps every order to the statement fields it sorts
by, most significant first.
*/
var orderPermutations = [NumOrders][]int{
	SPO:  {FieldSubject, FieldPredicate, FieldObject},
	SOP:  {FieldSubject, FieldObject, FieldPredicate},
	OPS:  {FieldObject, FieldPredicate, FieldSubject},
	OSP:  {FieldObject, FieldSubject, FieldPredicate},
	PSO:  {FieldPredicate, FieldSubject, FieldObject},
	POS:  {FieldPredicate, FieldObject, FieldSubject},
	GSPO: {FieldGraph, FieldSubject, FieldPredicate, FieldObject},
	GSOP: {FieldGraph, FieldSubject, FieldObject, FieldPredicate},
	GOPS: {FieldGraph, FieldObject, FieldPredicate, FieldSubject},
	GOSP: {FieldGraph, FieldObject, FieldSubject, FieldPredicate},
	GPSO: {FieldGraph, FieldPredicate, FieldSubject, FieldObject},
	GPOS: {FieldGraph, FieldPredicate, FieldObject, FieldSubject},
}

/*
orderNames maps every order to its name.
*/
var orderNames = [NumOrders]string{
	"spo", "sop", "ops", "osp", "pso", "pos",
	"gspo", "gsop", "gops", "gosp", "gpso", "gpos",
}

/*
IsValid returns if this order is one of the twelve defined orders.
*/
func (o Order) IsValid() bool {
	return o >= SPO && o < NumOrders
}

/*
HasGraph returns if this order has a leading graph field.
*/
func (o Order) HasGraph() bool {
	return o >= graphOrderOffset
}

/*
WithGraph returns the graph-qualified counterpart of this order.
*/
func (o Order) WithGraph() Order {
	if o.HasGraph() {
		return o
	}
	return o + graphOrderOffset
}

/*
TripleOrder returns this order without its leading graph field.
*/
func (o Order) TripleOrder() Order {
	if o.HasGraph() {
		return o - graphOrderOffset
	}
	return o
}

/*
Permutation returns the statement fields this order sorts by, most
significant first.
*/
func (o Order) Permutation() []int {
	return orderPermutations[o]
}

/*
String returns the name of this order.
*/
func (o Order) String() string {
	if !o.IsValid() {
		return "unknown"
	}
	return orderNames[o]
}

/*
Flags modify the behavior of a store.
*/
type Flags int

/*
Available store flags
*/
const (
	FlagStoreGraphs Flags = 1 << iota // Store and index the graph field
	FlagKeepCarets                    // Retain caret provenance on statements
)

/*
StoreGraphs returns if the graph field of statements is stored.
*/
func (f Flags) StoreGraphs() bool {
	return f&FlagStoreGraphs != 0
}

/*
KeepCarets returns if caret provenance is retained on statements.
*/
func (f Flags) KeepCarets() bool {
	return f&FlagKeepCarets != 0
}
