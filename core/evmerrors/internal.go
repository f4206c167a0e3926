// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evmerrors

import (
	"fmt"
	"runtime"

	"github.com/luxfi/symevm/log"
)

// InternalError is the single sanctioned panic type in this module: it is
// raised only when an internal invariant the rest of the system relies on
// (sort discipline, local-context completeness, concreteness canonicalization)
// would otherwise be silently violated. Ordinary EVM failures are EvmError
// values, never panics. It carries a captured stack so a top-level test
// harness recovering it can report where the violation originated.
type InternalError struct {
	Msg   string
	Stack []uintptr
}

func (e InternalError) Error() string { return "internal error: " + e.Msg }

// CallStack formats the captured frames as a multi-line string, for harnesses
// that recover an InternalError and want to log it.
func (e InternalError) CallStack() string {
	frames := runtime.CallersFrames(e.Stack)
	out := ""
	for {
		f, more := frames.Next()
		out += fmt.Sprintf("%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			break
		}
	}
	return out
}

// Fail logs the message at Crit and panics with an InternalError, matching
// the ambient logging convention of routing unrecoverable conditions through
// the root logger before aborting.
func Fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Crit(msg)
	pc := make([]uintptr, 32)
	n := runtime.Callers(2, pc)
	panic(InternalError{Msg: msg, Stack: pc[:n]})
}
