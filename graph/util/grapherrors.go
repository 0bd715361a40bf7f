/*
 * tristore
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package util contains the error taxonomy shared by the graph index and
the transitive resolver.

GraphError

Models a graph related error. Low-level errors are wrapped in a GraphError
before they are returned to a client, so callers can compare the Type
field against one of the sentinel errors below regardless of Detail.
*/
package util

import (
	"errors"
	"fmt"
)

/*
GraphError is a graph related error.
*/
type GraphError struct {
	Type   error  // Error type (to be used for equal checks)
	Detail string // Details of this error
}

/*
Error returns a human-readable string representation of this error.
*/
func (ge *GraphError) Error() string {
	if ge.Detail != "" {
		return fmt.Sprintf("GraphError: %v (%v)", ge.Type, ge.Detail)
	}

	return fmt.Sprintf("GraphError: %v", ge.Type)
}

/*
Graph related error types.
*/
var (
	ErrUnboundClosure    = errors.New("Transitive resolve requires at least one bound position")
	ErrInvalidPattern    = errors.New("Invalid pattern")
	ErrInternalInvariant = errors.New("Internal invariant violated")
)
