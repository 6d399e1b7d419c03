// SPDX-License-Identifier: MIT
// Package varenv implements the environment adapter (spec §4.4): an
// ordered, typed set of program variables that assigns each variable a
// stable column index, plus the handful of editing primitives
// (add_vars, remove_vars, dimchange2_add) that turn a requested
// environment change into the index arrays sparsemat needs to build a
// grown or shrunk copy of a matrix.
//
// Environment is an immutable value, matching the pure-value-library
// shape of the rest of the core (spec §5): there is no mutex here
// because nothing in this package is ever mutated after construction —
// unlike the teacher's Graph, which is a long-lived mutable object
// shared across goroutines, an Environment is built once per state and
// replaced wholesale by every edit.
package varenv
