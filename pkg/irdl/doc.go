// SPDX-License-Identifier: MPL-2.0

// Package irdl implements the CUE-based front-end for IRDL dialect
// description files.
//
// A .irdl file is CUE text whose top level is a struct of named
// declarations. A dialect declaration is a struct with kind "dialect",
// holding optional documentation plus attribute and operation definitions:
//
//	arith: {
//		kind: "dialect"
//		doc:  "Integer arithmetic."
//		operations: [
//			{name: "add", operands: [{name: "lhs", type: "i32"}, {name: "rhs", type: "i32"}], results: [{name: "sum", type: "i32"}]},
//		]
//	}
//
// The Frontend satisfies the modload collaborator contract: Compile
// evaluates the source, Build validates a located declaration against the
// embedded schema and produces a dialect.Dialect, and RenderStub renders
// the deterministic interface stub written next to the source file.
package irdl
