// Package quantity implements the three dimensioned values a nibble
// expression works with: Information, Duration and Speed.
//
// Magnitudes are exact integers (bits and nanoseconds) held in big.Int, so
// values such as 11.25Yib or 1000y neither overflow nor drift across repeated
// conversions. Construction rounds information up to a whole bit and durations
// to the nearest nanosecond.
//
// Rendering uses a small format language shared by all three types:
//
//	[number-format|][ ][unit-or-category]
//
// where number-format is [,][.N][f]. Speed adds an optional
// /[quantity][ ]duration-unit denominator. A category (bB, dB, bb, db)
// selects the largest unit of that family that the value fills at least once.
//
// Unit tables are built once at package initialisation and never modified,
// so every function here is safe for concurrent use.
package quantity
