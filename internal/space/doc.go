// Package space models the iteration domain of one dense matrix
// multiplication: the cube [0,M)x[0,N)x[0,K) of multiply-accumulate
// operations for C = A x B, where A is MxK, B is KxN and C is MxN.
//
// The package is pure data. [Dims] validates a shape and reports the
// total step count; [MacStep] is one point of the cube together with
// the operand elements it touches. Traversal order is the concern of
// the traversal package, never of this one.
package space
