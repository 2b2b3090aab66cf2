// Package harness runs expression scenarios through the evaluator.
//
// A scenario is a YAML file listing expressions with the text each should
// render to, or the class of error each should fail with:
//
//	name: line-rates
//	description: Transfer times over common links
//	display:
//	  information: " dB"
//	cases:
//	  - expr: 1GB at 1Gb/s
//	    want: 8 seconds
//	    kind: duration
//	  - expr: 10 10 10
//	    error: parse
//
// Error classes are "lex", "parse", or a quantity error code such as
// "ZERO_DURATION".
//
// Every case is recorded in the Result trace whether it passes or not, so a
// run can also be compared against a golden file (see RunWithGolden).
package harness
