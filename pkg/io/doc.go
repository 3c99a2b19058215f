// Package io reads and writes the line formats used by stackcheck.
//
// # Arrival Lines
//
// One arrival sequence per line, ship ids separated by commas, in arrival
// order. An empty line is an empty sequence.
//
//	3,1,2
//	5,5,5
//
// # Candidate Lines
//
// One candidate solution per line. The first field is the number of stacks
// the solver reports; each following space-separated field is one stack,
// bottom to top, ids separated by commas.
//
//	2 3,1 2
//	1 5,5,5
//
// [FormatPartition] writes a partition in the same format, so the output of
// `stackcheck solve` is a valid candidate stream.
//
// # Pairing
//
// [CaseReader] walks an arrival file and a candidate stream in lockstep,
// yielding one [Case] per line pair. Reading stops at the end of the
// arrival file; a missing or malformed line is reported as an
// INVALID_INPUT error carrying the line number.
//
// # JSON
//
// [WriteSolutionsJSON] and [ReadSolutionsJSON] exchange solved sequences
// as JSON for tooling that prefers structured data:
//
//	[
//	  {"arrivals": [3, 1, 2], "stacks": [[3, 1], [2]]}
//	]
package io
