// Package sparsevec provides a length-tagged sparse vector over exact
// rationals (spec §4.2): a semantic dense vector over rational.Rational,
// stored as a sorted list of (index, value) pairs with every stored value
// non-zero.
//
// Length is part of the value — two vectors of different length are
// never equal, even if both are all-zero — which lets sparsemat use
// SparseVector directly as its row type without a separate "shape" field.
package sparsevec
