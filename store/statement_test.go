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
	"devt.de/krotik/rdfstore/store/util"
)

func TestStatementAccessors(t *testing.T) {
	table := rdf.NewTable()

	st := testStatement(table, "ex:s", "ex:p", "ex:o", "ex:g")

	if st.Subject() != st.Field(FieldSubject) ||
		st.Predicate() != st.Field(FieldPredicate) ||
		st.Object() != st.Field(FieldObject) ||
		st.Graph() != st.Field(FieldGraph) {

		t.Error("Accessor mismatch")
		return
	}

	if res := st.String(); res != "ex:s ex:p ex:o ex:g" {
		t.Error("Unexpected result:", res)
		return
	}

	st = testStatement(table, "ex:s", "ex:p", "ex:o", "")

	if res := st.String(); res != "ex:s ex:p ex:o" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := st.Caret(); res != nil {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestStatementValidation(t *testing.T) {
	table := rdf.NewTable()

	uri := table.InternURI("http://example.com/a")
	blank := table.InternBlank("b0")
	literal := table.InternLiteral("text")

	// A regular statement is valid - literal objects are fine

	if err := ValidateStatement(uri, uri, literal, nil); err != nil {
		t.Error("Unexpected result:", err)
		return
	}

	if err := ValidateStatement(blank, uri, uri, uri); err != nil {
		t.Error("Unexpected result:", err)
		return
	}

	// Missing fields are reported with their count

	err := ValidateStatement(nil, uri, nil, nil)

	if !util.IsError(err, util.ErrInvalidStatement) ||
		err.Error() != "StoreError: Invalid statement (2 fields missing)" {

		t.Error("Unexpected result:", err)
		return
	}

	// Predicate constraints

	if err := ValidateStatement(uri, blank, uri, nil); !util.IsError(err, util.ErrInvalidStatement) {
		t.Error("Unexpected result:", err)
		return
	}

	if err := ValidateStatement(uri, literal, uri, nil); !util.IsError(err, util.ErrInvalidStatement) {
		t.Error("Unexpected result:", err)
		return
	}

	// Subject and graph constraints

	if err := ValidateStatement(literal, uri, uri, nil); !util.IsError(err, util.ErrInvalidStatement) {
		t.Error("Unexpected result:", err)
		return
	}

	if err := ValidateStatement(uri, uri, uri, literal); !util.IsError(err, util.ErrInvalidStatement) {
		t.Error("Unexpected result:", err)
		return
	}
}
