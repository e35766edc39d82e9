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
	"devt.de/krotik/rdfstore/rdf"
)

/*
NodeDesc describes a node as delivered by a streaming source. For
literals either a datatype URI or a language tag may be given, not
both.
*/
type NodeDesc struct {
	Kind     rdf.Kind // Kind of the described node
	Value    string   // Content bytes
	Datatype string   // Datatype URI (literals only)
	Language string   // Language tag (literals only)
}

/*
Event is one statement event of an ingest stream: four node
descriptions plus optional origin information. A nil graph means the
source has no explicit graph in scope - the sink's default graph
applies then.
*/
type Event struct {
	Subject   NodeDesc  // Subject description
	Predicate NodeDesc  // Predicate description
	Object    NodeDesc  // Object description
	Graph     *NodeDesc // Graph description or nil
	Document  string    // Origin document URI (empty if unknown)
	Line      int       // Line in the origin document
	Column    int       // Column in the origin document
}

/*
Sink accepts statement events from a streaming source and feeds them
into a store. Every event is interned, validated and inserted; the
outcome (success, ErrDuplicate, ErrInvalidStatement or
ErrUnresolvedNode) is reported per event.
*/
type Sink struct {
	store        *Store    // Store receiving the events
	defaultGraph *rdf.Node // Graph for events without an explicit graph
}

/*
NewSink creates a new ingest sink for a store.
*/
func NewSink(s *Store) *Sink {
	return &Sink{s, nil}
}

/*
SetDefaultGraph sets the graph which applies to events without an
explicit graph in scope. A nil node clears the override. The sink
holds its own reference to the node.
*/
func (sk *Sink) SetDefaultGraph(graph *rdf.Node) {
	if sk.defaultGraph != nil {
		sk.store.nodes.Deref(sk.defaultGraph)
	}

	sk.defaultGraph = sk.store.nodes.Ref(graph)
}

/*
Close releases the resources held by this sink.
*/
func (sk *Sink) Close() {
	sk.SetDefaultGraph(nil)
}

/*
Push interns the nodes of one statement event and inserts the
statement into the store.
*/
func (sk *Sink) Push(event Event) error {
	subject := sk.internDesc(event.Subject)
	predicate := sk.internDesc(event.Predicate)
	object := sk.internDesc(event.Object)

	graph := sk.defaultGraph

	if event.Graph != nil {
		graph = sk.internDesc(*event.Graph)
	}

	var caret *Caret

	if event.Document != "" && sk.store.flags.KeepCarets() {
		caret = &Caret{sk.store.nodes.InternURI(event.Document),
			event.Line, event.Column}
	}

	err := sk.store.Insert(subject, predicate, object, graph, caret)

	// The store holds its own references now - release the handles
	// interned for this event

	sk.store.nodes.Deref(subject)
	sk.store.nodes.Deref(predicate)
	sk.store.nodes.Deref(object)

	if event.Graph != nil {
		sk.store.nodes.Deref(graph)
	}

	if caret != nil {
		sk.store.nodes.Deref(caret.Document)
	}

	return err
}

/*
internDesc interns the node a description describes.
*/
func (sk *Sink) internDesc(desc NodeDesc) *rdf.Node {
	if desc.Kind == rdf.KindLiteral {

		if desc.Language != "" {
			return sk.store.nodes.InternLangLiteral(desc.Value, desc.Language)
		}

		if desc.Datatype != "" {
			return sk.store.nodes.InternTypedLiteral(desc.Value, desc.Datatype)
		}
	}

	return sk.store.nodes.Intern(rdf.Spec{Kind: desc.Kind, Value: desc.Value})
}
