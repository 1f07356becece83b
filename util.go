package main

import (
	"log"
	"regexp"
	"runtime"
	"time"
)

var runtimeFunc = regexp.MustCompile(`^.*\.(.*)$`)

// Function time tracking thanks to:
// https://stackoverflow.com/questions/45766572/is-there-an-efficient-way-to-calculate-execution-time-in-golang
func timeTrack(start time.Time, steps uint64) {
	elapsed := time.Since(start)

	// Skip this function, and fetch the PC and file for its parent.
	pc, _, _, _ := runtime.Caller(1)

	// Extract just the function name (and not the module path).
	name := runtimeFunc.ReplaceAllString(runtime.FuncForPC(pc).Name(), "$1")

	log.Printf("%s took %s, %d instructions", name, elapsed, steps)
}
