/*
 * tristore
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package data

import "testing"

func TestSplitPredicateTag(t *testing.T) {
	tests := []struct {
		in       string
		wantName string
		wantKind TransKind
	}{
		{"knows", "knows", TransNone},
		{"knows*", "knows", TransStar},
		{"knows+", "knows", TransPlus},
		{"knows'*", "knows'*", TransNone},
		{"knows'+", "knows'+", TransNone},
		{"a*", "a", TransStar},
		{"*", "*", TransNone},
	}

	for _, tc := range tests {
		name, kind := SplitPredicateTag(tc.in)
		if name != tc.wantName || kind != tc.wantKind {
			t.Errorf("SplitPredicateTag(%q) = (%q, %v), want (%q, %v)",
				tc.in, name, kind, tc.wantName, tc.wantKind)
		}
	}
}

func TestResolveTransKind(t *testing.T) {
	trueVal := true
	falseVal := false

	if got := ResolveTransKind(TransPlus, nil); got != TransPlus {
		t.Errorf("nil override changed the in-name tag: got %v", got)
	}

	if got := ResolveTransKind(TransNone, &trueVal); got != TransStar {
		t.Errorf("true override should force TransStar, got %v", got)
	}

	if got := ResolveTransKind(TransStar, &falseVal); got != TransNone {
		t.Errorf("false override should suppress the tag, got %v", got)
	}
}

func TestIsValidName(t *testing.T) {
	if !IsValidName("knows_well") {
		t.Error("knows_well should be a valid predicate name")
	}

	if IsValidName("knows well") {
		t.Error("a name with a space should be invalid")
	}
}
