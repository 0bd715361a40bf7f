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

import (
	"github.com/krotik/common/stringutil"
)

/*
Predicate is an edge label. Triples stored in the graph index always
carry the plain predicate - any transitive tag (`*` or `+`) is parsed out
beforehand by SplitPredicateTag and only steers dispatch at query time.
*/
type Predicate string

/*
TransKind classifies the transitive-closure semantics requested for a
predicate.
*/
type TransKind int

/*
Transitive-closure kinds.
*/
const (
	TransNone TransKind = iota
	TransStar           // reflexive-transitive closure
	TransPlus           // transitive closure
)

/*
SplitPredicateTag splits a raw predicate name into its plain form and its
in-name transitive tag, per the bit-exact rule: a trailing '*' or '+' is a
tag unless escaped by an immediately preceding single quote, in which case
the name is untagged and the quote is kept as a literal character.
*/
func SplitPredicateTag(name string) (string, TransKind) {
	l := len(name)

	if l >= 2 {
		last := name[l-1]

		if (last == '*' || last == '+') && name[l-2] != '\'' {
			if last == '*' {
				return name[:l-1], TransStar
			}
			return name[:l-1], TransPlus
		}
	}

	return name, TransNone
}

/*
ResolveTransKind applies out-of-band metadata on top of an in-name tag:
metaTrans == nil leaves the in-name tag as-is; *metaTrans == true selects
TransStar regardless of any in-name tag; *metaTrans == false suppresses
any in-name tag.
*/
func ResolveTransKind(inName TransKind, metaTrans *bool) TransKind {
	if metaTrans == nil {
		return inName
	}

	if *metaTrans {
		return TransStar
	}

	return TransNone
}

/*
IsValidName checks if a plain predicate name is well-formed - alphanumeric
plus underscore, the same shape eliasdb requires of its kind and role
names in graph/helpers.go.
*/
func IsValidName(name string) bool {
	return stringutil.IsAlphaNumeric(name)
}
