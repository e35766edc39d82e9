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
Package rdf contains the node model and the node interning table of the
RDF statement store.

Node

A Node is an immutable RDF term: a literal, a URI, a prefixed name, a
blank node or a variable. Literal nodes may carry a meta node which is
either a datatype URI or a language tag (mutually exclusive). Nodes are
value-compared through a total content order which every statement
index uses as its element order.

Table

A Table is an interning pool for nodes. Every distinct node content is
materialized exactly once; all statements and all external handles
share the single canonical instance. This makes node equality within
one table a pointer comparison. Nodes are reference counted by the
table and are freed when their last reference is released.

Lookups are resolved against a hash of the node specification before
any node is allocated. The hash of a specification and the hash of a
materialized node with the same content are computed by the same
function over the same bytes and therefore always agree - see
hashSpec() for the details of this contract.
*/
package rdf

/*
Kind classifies the content of a node.
*/
type Kind int

/*
Available node kinds
*/
const (
	KindLiteral  Kind = iota // Literal value with optional datatype or language
	KindURI                  // Absolute URI reference
	KindCurie                // Prefixed (CURIE) name
	KindBlank                // Blank node
	KindVariable             // Query variable
)

/*
Names of node kinds (for debugging output)
*/
var kindNames = map[Kind]string{
	KindLiteral:  "literal",
	KindURI:      "uri",
	KindCurie:    "curie",
	KindBlank:    "blank",
	KindVariable: "variable",
}

/*
String returns the name of this kind.
*/
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

/*
Spec describes the content of a node without materializing it. Specs
are used for table lookups - a lookup with a spec never allocates
unless the node does not exist yet. The meta node of a spec must
already be interned in the target table.
*/
type Spec struct {
	Kind       Kind   // Kind of the described node
	Value      string // Content bytes of the described node
	Meta       *Node  // Interned datatype URI or language tag node
	MetaIsLang bool   // Meta node is a language tag not a datatype
}
