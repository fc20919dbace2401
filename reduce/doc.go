// Package reduce compares sequential and fork-join reductions over an integer buffer.
//
// The buffer is split into contiguous partitions, one per worker. Each worker
// writes its partial sum or search flag into a private slot, and the slots are
// combined only after every worker has been joined, so no locking is needed.
//
// Sums are accumulated in an int64. With values below MaxValue and buffers
// shorter than 10^9 elements the accumulator cannot overflow; larger inputs
// are outside the supported range and are not checked.
package reduce
