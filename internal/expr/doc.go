// Package expr lexes and evaluates nibble expressions such as
// "400GiB at .87Mb/s" or "10Gb/s in MiB/h".
//
// Operators, loosest first:
//
//	in        conversion to a unit, or information over a duration
//	at, for   information or duration at a speed, speed for a duration
//	per, /    information per duration
//	(space)   adjacent duration terms are summed, e.g. "3h 30m"
//
// A conversion to a unit is terminal: it yields a Formatted string and
// nothing may follow it.
package expr
