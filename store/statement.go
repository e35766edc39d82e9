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

	"devt.de/krotik/common/stringutil"
	"devt.de/krotik/rdfstore/rdf"
	"devt.de/krotik/rdfstore/store/util"
)

/*
Caret records the origin of a statement for diagnostics: the document
node it was read from and the line and column within that document.
*/
type Caret struct {
	Document *rdf.Node // Origin document node
	Line     int       // Line in the origin document
	Column   int       // Column in the origin document
}

/*
Statement is a stored subject / predicate / object tuple with an
optional graph context. A statement borrows its nodes from the store's
node table; it owns only its optional caret.
*/
type Statement struct {
	nodes [4]*rdf.Node // Subject, predicate, object, graph
	caret *Caret       // Optional origin information
}

/*
Subject returns the subject node of this statement.
*/
func (s *Statement) Subject() *rdf.Node {
	return s.nodes[FieldSubject]
}

/*
Predicate returns the predicate node of this statement.
*/
func (s *Statement) Predicate() *rdf.Node {
	return s.nodes[FieldPredicate]
}

/*
Object returns the object node of this statement.
*/
func (s *Statement) Object() *rdf.Node {
	return s.nodes[FieldObject]
}

/*
Graph returns the graph node of this statement or nil if the statement
is in the default graph.
*/
func (s *Statement) Graph() *rdf.Node {
	return s.nodes[FieldGraph]
}

/*
Field returns a statement node by field position.
*/
func (s *Statement) Field(field int) *rdf.Node {
	return s.nodes[field]
}

/*
Caret returns the origin information of this statement or nil if none
was retained.
*/
func (s *Statement) Caret() *Caret {
	return s.caret
}

/*
String returns a string representation of this statement (for
debugging purposes).
*/
func (s *Statement) String() string {
	if s.nodes[FieldGraph] != nil {
		return fmt.Sprintf("%v %v %v %v", s.nodes[FieldSubject],
			s.nodes[FieldPredicate], s.nodes[FieldObject], s.nodes[FieldGraph])
	}

	return fmt.Sprintf("%v %v %v", s.nodes[FieldSubject],
		s.nodes[FieldPredicate], s.nodes[FieldObject])
}

/*
ValidateStatement checks the structural constraints for statement
fields: subject, predicate and object must be present, the predicate
must not be a blank node or a literal and neither the subject nor the
graph may be a literal.
*/
func ValidateStatement(subject *rdf.Node, predicate *rdf.Node,
	object *rdf.Node, graph *rdf.Node) error {

	missing := 0

	for _, node := range []*rdf.Node{subject, predicate, object} {
		if node == nil {
			missing++
		}
	}

	if missing > 0 {
		return util.NewStoreError(util.ErrInvalidStatement,
			fmt.Sprintf("%v field%s missing", missing, stringutil.Plural(missing)))
	}

	if predicate.Kind() == rdf.KindBlank || predicate.Kind() == rdf.KindLiteral {
		return util.NewStoreError(util.ErrInvalidStatement,
			fmt.Sprintf("Predicate must not be a %v node", predicate.Kind()))
	}

	if subject.Kind() == rdf.KindLiteral {
		return util.NewStoreError(util.ErrInvalidStatement,
			"Subject must not be a literal node")
	}

	if graph != nil && graph.Kind() == rdf.KindLiteral {
		return util.NewStoreError(util.ErrInvalidStatement,
			"Graph must not be a literal node")
	}

	return nil
}
