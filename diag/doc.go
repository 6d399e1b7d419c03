// SPDX-License-Identifier: MIT
// Package diag supplies a concrete affeq.Tracer backed by zerolog,
// following the teacher's pkg/logger convention (a package-level
// configured Logger, console output by default). It is a collaborator
// only: affeq and its sibling packages never import this package, so a
// caller who doesn't want tracing never pays for zerolog either.
package diag
