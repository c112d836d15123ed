// Package traversal defines the algorithm families that walk the
// iteration cube and the generators that realize them:
//
//   - [Naive]: three nested loops in any of the six axis orders
//   - [Tiled]: blocked multiplication with independent outer and
//     inner orders and partial edge tiles
//
// A [Generator] maps a step index to a [space.MacStep] with no hidden
// cursor, so a sequence can be re-read from any point and reproduces
// itself exactly. Every generator visits each (i, j, k) triple of the
// cube exactly once; only the visitation order distinguishes the
// algorithms.
//
// The interface makes no loop-nest assumption. Anything producing a
// total order over the cube fits, which leaves room for wavefront
// (systolic) schedules without changing this contract.
package traversal
