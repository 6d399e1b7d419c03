// Package sparsemat implements the sparse matrix representation of an
// affine subspace of Q^n (spec §4.3): an ordered list of SparseVector
// rows sharing a column count, the reduced row-echelon normal form, and
// the handful of primitives ("add a new equality", "eliminate a
// variable", "find the smallest space containing two spaces") that the
// affine-equalities domain builds its lattice and transfer operations
// on top of.
//
// Column convention: columns 0..n-1 correspond to variables; column n
// (the last one) is the constant column. A row (c0,...,c[n-1], k)
// encodes the equality sum(ci*xi) + k = 0.
//
// RREF invariant (enforced by every exported constructor that returns a
// Matrix claiming to be normalized): each row has a leading (pivot)
// coefficient of exactly 1; pivot columns strictly increase down the
// rows; a pivot column is non-zero only in its own pivot row; there are
// no all-zero rows. An empty Matrix (zero rows) denotes top — no
// equality constrains the variables.
package sparsemat
