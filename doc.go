/*
Package kotlang is an interpreter for .kot scripts, a small line-oriented
scripting language with typed variable declarations, a single-level
conditional, literal and interpolated printing, and blocking input.

A .kot script looks like this:

    int<x>5
    double<y>1.5
    list<l>2(a,b,c)
    if (x>3) {
    f(x+y is {x+y})
    }

Package structure is as follows:

■ runtime: Package runtime provides the value model, the variable store and
the set of reserved keywords.

■ scanner: Package scanner tokenizes arithmetic expressions, backed by lexmachine.

■ expr: Package expr evaluates arithmetic expressions and the built-in
functions pow, sqrt and log.

■ interp: Package interp classifies and executes script statements.

■ cmd/kot: A terminal host to run scripts and to experiment interactively.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package kotlang
