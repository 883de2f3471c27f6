/*
Package value implements the tagged value variant flowing through pattern
matching and evaluation.

Captured substrings, literals and results of functions are all represented
as a Value, which is one of nil, number, string, bool, sequence, map, date
or opaque. Grammars check the variant of their operands at runtime and
reject operands of the wrong kind by not matching.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package value
