/*
Package runtime implements the runtime environment of the .kot interpreter,
consisting of values, a variable store and the reserved keywords.

Values

Scripts know four primitive kinds of values (int, double, string, bool) plus
bounded lists. Values are immutable.

Variable Store

Scripts have one flat namespace. The store is cleared at the start of every
run, so no state leaks from one run into the next.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-22, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"strconv"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kotlang.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("kotlang.runtime")
}

// reserved holds the keywords of the language. Variables may not be named
// like one of them.
var reserved = treeset.NewWith(utils.StringComparator,
	"int", "double", "string", "bool", "type", "list", "in", "to")

// IsReserved is a predicate: is name a reserved keyword?
func IsReserved(name string) bool {
	return reserved.Contains(name)
}

// Keywords returns the reserved keywords in lexical order.
func Keywords() []string {
	kw := make([]string, 0, reserved.Size())
	for _, k := range reserved.Values() {
		kw = append(kw, k.(string))
	}
	return kw
}

// Runtime is a type implementing a runtime environment for an interpreter.
type Runtime struct {
	Store *VariableStore // variables of the current run
	Runs  int            // number of runs started so far
}

// NewRuntimeEnvironment constructs a new runtime environment, initialized
// with an empty variable store.
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{}
	rt.Store = NewVariableStore()
	return rt
}

// StartRun clears all variables of a previous run and counts the new run.
func (rt *Runtime) StartRun() {
	rt.Store.Clear()
	rt.Runs++
	tracer().P("run", strconv.Itoa(rt.Runs)).Debugf("starting with empty variable store")
}
