// Package instancefile reads and writes subset-sum instance descriptions.
//
// Format:
//
//	<size> <target>
//	<item 1>
//	...
//	<item size>
//
// size is a decimal item count, target a decimal uint64, each item a
// non-negative decimal integer on its own line. Line endings may be "\n",
// "\r\n" or "\r"; blank trailing lines are ignored.
//
// Malformed input fails fast with ErrMalformedInstance (wrapped with the
// offending line number) instead of producing garbage values; open/read
// failures surface as ErrInputUnavailable.
package instancefile
