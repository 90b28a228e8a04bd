package main

import "runtime"

// MaxWorkers is the largest accepted --workers value.
const MaxWorkers = 32

// maxAutoWorkers caps the worker count chosen automatically.
const maxAutoWorkers = 8

// resolvePoolSize determines the number of conversion workers.
// Priority: explicit flag > GOMAXPROCS-based calculation.
func resolvePoolSize(flagWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0) / 2

	if n < 1 {
		return 1
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers
	}
	return n
}
