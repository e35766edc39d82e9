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
	"devt.de/krotik/common/bitutil"
	"devt.de/krotik/common/errorutil"
)

/*
hashSeed is the seed for all node content hashes.
*/
const hashSeed = 42

/*
Table is an interning pool for nodes. All nodes of a store are created
through one table and are reference counted by it.
*/
type Table struct {
	buckets map[uint32][]*Node // Nodes by content hash
	size    int                // Number of distinct nodes in the table
}

/*
NewTable creates a new node interning table.
*/
func NewTable() *Table {
	return &Table{make(map[uint32][]*Node), 0}
}

/*
Size returns the number of distinct nodes in the table.
*/
func (t *Table) Size() int {
	return t.size
}

/*
Intern returns the canonical node for the given spec. The node is
created and stored on first occurrence; on every further call the
reference count of the existing node is incremented. The caller holds
one reference to the result and must release it with Deref.
*/
func (t *Table) Intern(spec Spec) *Node {
	hash := hashSpec(spec)

	if node := t.lookup(hash, spec); node != nil {
		node.refs++
		return node
	}

	// No node with this content exists yet - only now allocate one.
	// The node records the spec hash so that both sides of the
	// lookup always hash the same bytes.

	node := &Node{spec.Kind, spec.Value, spec.Meta, spec.MetaIsLang, hash, 1}

	if node.meta != nil {
		node.meta.refs++
	}

	t.buckets[hash] = append(t.buckets[hash], node)
	t.size++

	return node
}

/*
Existing returns the canonical node for the given spec if it exists.
Neither a node is created nor a reference count touched.
*/
func (t *Table) Existing(spec Spec) *Node {
	return t.lookup(hashSpec(spec), spec)
}

/*
Ref increments the reference count of a node and returns it. Used by
statement owners which share a node handle.
*/
func (t *Table) Ref(node *Node) *Node {
	if node != nil {
		node.refs++
	}
	return node
}

/*
Deref releases one reference to a node. The node is removed from the
table and freed once its last reference is released; a freed literal
also releases the reference it held on its meta node.
*/
func (t *Table) Deref(node *Node) {
	if node == nil {
		return
	}

	errorutil.AssertTrue(node.refs > 0, "Deref of node without references")

	node.refs--

	if node.refs > 0 {
		return
	}

	// Remove the node from its bucket

	bucket := t.buckets[node.hash]

	for i, item := range bucket {

		if item == node {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}

	if len(bucket) == 0 {
		delete(t.buckets, node.hash)
	} else {
		t.buckets[node.hash] = bucket
	}

	t.size--

	if node.meta != nil {
		t.Deref(node.meta)
	}
}

/*
lookup scans the bucket of a given hash for a node matching the spec.
*/
func (t *Table) lookup(hash uint32, spec Spec) *Node {
	for _, node := range t.buckets[hash] {

		if node.kind == spec.Kind && node.value == spec.Value &&
			node.meta == spec.Meta && node.metaIsLang == spec.MetaIsLang {

			return node
		}
	}

	return nil
}

/*
hashSpec hashes a node specification. This function is the single
definition of the node content hash: a materialized node stores the
hash which was computed from its spec, so a spec lookup and a node
lookup always agree bit for bit without a candidate node ever being
allocated.
*/
func hashSpec(spec Spec) uint32 {
	data := make([]byte, 0, len(spec.Value)+7)

	data = append(data, byte(spec.Kind))

	if spec.MetaIsLang {
		data = append(data, 1)
	} else {
		data = append(data, 0)
	}

	data = append(data, spec.Value...)

	if spec.Meta != nil {
		data = append(data, 0)
		data = append(data, spec.Meta.value...)
	}

	// Sentinel byte so the data is never empty

	data = append(data, 0xff)

	hash, err := bitutil.MurMurHashData(data, 0, len(data)-1, hashSeed)
	errorutil.AssertOk(err)

	return hash
}

/*
InternURI interns a URI node.
*/
func (t *Table) InternURI(uri string) *Node {
	return t.Intern(Spec{Kind: KindURI, Value: uri})
}

/*
InternCurie interns a prefixed name node.
*/
func (t *Table) InternCurie(name string) *Node {
	return t.Intern(Spec{Kind: KindCurie, Value: name})
}

/*
InternBlank interns a blank node.
*/
func (t *Table) InternBlank(name string) *Node {
	return t.Intern(Spec{Kind: KindBlank, Value: name})
}

/*
InternVariable interns a variable node.
*/
func (t *Table) InternVariable(name string) *Node {
	return t.Intern(Spec{Kind: KindVariable, Value: name})
}

/*
InternLiteral interns a plain literal node.
*/
func (t *Table) InternLiteral(value string) *Node {
	return t.Intern(Spec{Kind: KindLiteral, Value: value})
}

/*
InternTypedLiteral interns a literal node with a datatype. The datatype
node is interned as part of the call; the literal holds the reference
to it.
*/
func (t *Table) InternTypedLiteral(value string, datatype string) *Node {
	meta := t.InternURI(datatype)

	node := t.Intern(Spec{Kind: KindLiteral, Value: value, Meta: meta})

	// The literal now holds its own reference to the meta node

	t.Deref(meta)

	return node
}

/*
InternLangLiteral interns a literal node with a language tag.
*/
func (t *Table) InternLangLiteral(value string, lang string) *Node {
	meta := t.InternLiteral(lang)

	node := t.Intern(Spec{Kind: KindLiteral, Value: value, Meta: meta, MetaIsLang: true})

	t.Deref(meta)

	return node
}
