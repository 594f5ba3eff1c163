/*
Command kot runs .kot scripts.

	kot [-trace level] [-reducer legacy|precedence] [-input a,b,…] [script.kot]

Given a script file, kot runs it once and prints the output. Without a
script file, kot starts an interactive shell. Lines entered in the shell are
collected into a buffer, which is interpreted by the command ":run".
Statements requesting input prompt on the terminal, unless answers are
supplied with flag -input.

Shell commands are

	:run       interpret the buffer
	:show      list the buffer
	:new       empty the buffer
	:vars      display the variables of the latest run
	:keywords  list the reserved keywords
	:clear     clear the output and the screen (also: clear)
	:quit      leave the shell (also: <ctrl>D)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kotlang.interp'
func tracer() tracing.Trace {
	return tracing.Select("kotlang.interp")
}
