// Package parallel splits accumulation workloads across independent workers.
// Workers share no mutable state: each one computes the sum of its own
// contiguous range and publishes the partial result on a multi-producer
// single-consumer queue that the caller drains after every worker finished.
package parallel
