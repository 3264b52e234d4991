// Package assert raises Go panics for the programmer-error class of bug
// this module's design treats as an invariant violation rather than a
// user-visible condition.
package assert

import "fmt"

// Truef panics with a formatted message if cond is false. Callers use it
// for conditions that indicate a broken invariant (e.g. moving a completed
// color, rolling back a handle that is not the most recent allocation),
// never for ordinary control flow or user input validation.
func Truef(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
