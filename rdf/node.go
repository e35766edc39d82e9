/*
 * RDFStore
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package rdf

import (
	"fmt"
	"strings"
)

/*
Node is an immutable interned RDF term. Nodes are created and owned by
a Table; two nodes with the same content from the same table are
always the same instance.
*/
type Node struct {
	kind       Kind   // Kind of this node
	value      string // Content bytes
	meta       *Node  // Datatype URI or language tag (literals only)
	metaIsLang bool   // Meta node is a language tag
	hash       uint32 // Content hash (identical to the spec hash)
	refs       int    // Reference count (managed by the owning table)
}

/*
Kind returns the kind of this node.
*/
func (n *Node) Kind() Kind {
	return n.kind
}

/*
Value returns the content bytes of this node.
*/
func (n *Node) Value() string {
	return n.value
}

/*
Meta returns the datatype URI node or language tag node of a literal
node. The result is nil for plain literals and all non-literals.
*/
func (n *Node) Meta() *Node {
	return n.meta
}

/*
MetaIsLanguage returns if the meta node of this node is a language tag.
*/
func (n *Node) MetaIsLanguage() bool {
	return n.metaIsLang
}

/*
Spec returns the specification which describes this node's content.
*/
func (n *Node) Spec() Spec {
	return Spec{n.kind, n.value, n.meta, n.metaIsLang}
}

/*
IsResolved returns if this node can be stored as-is. URI nodes must be
absolute (have a scheme); all other kinds are always resolved.
*/
func (n *Node) IsResolved() bool {
	if n.kind != KindURI {
		return true
	}
	return hasScheme(n.value)
}

/*
hasScheme returns if a URI string starts with a scheme component.
*/
func hasScheme(uri string) bool {
	for i := 0; i < len(uri); i++ {
		c := uri[i]

		if c == ':' {
			return i > 0
		}

		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			continue
		}

		if i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.') {
			continue
		}

		return false
	}

	return false
}

/*
Equals compares two nodes by content. Within one table this is a
pointer comparison; across tables the node content is compared
structurally.
*/
func (n *Node) Equals(other *Node) bool {
	return Compare(n, other) == 0
}

/*
Compare establishes a total content order over nodes. A nil node sorts
before every other node. Nodes are ordered by kind, then by value,
then by their meta node.
*/
func Compare(n1 *Node, n2 *Node) int {
	if n1 == n2 {
		return 0
	}

	if n1 == nil {
		return -1
	} else if n2 == nil {
		return 1
	}

	if n1.kind != n2.kind {
		if n1.kind < n2.kind {
			return -1
		}
		return 1
	}

	if res := strings.Compare(n1.value, n2.value); res != 0 {
		return res
	}

	// Language tags sort after datatypes

	if n1.metaIsLang != n2.metaIsLang {
		if !n1.metaIsLang {
			return -1
		}
		return 1
	}

	return Compare(n1.meta, n2.meta)
}

/*
String returns a string representation of this node in a Turtle-like
syntax (for debugging purposes).
*/
func (n *Node) String() string {
	switch n.kind {

	case KindURI:
		return fmt.Sprintf("<%s>", n.value)

	case KindCurie:
		return n.value

	case KindBlank:
		return fmt.Sprintf("_:%s", n.value)

	case KindVariable:
		return fmt.Sprintf("?%s", n.value)
	}

	if n.meta != nil {
		if n.metaIsLang {
			return fmt.Sprintf("%q@%s", n.value, n.meta.value)
		}
		return fmt.Sprintf("%q^^<%s>", n.value, n.meta.value)
	}

	return fmt.Sprintf("%q", n.value)
}
