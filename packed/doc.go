// Package packed implements the bit-packed board primitives: grid
// positions and cells squeezed into single bytes, plus the direction
// algebra used to walk between them.
//
// A position packs a 4-bit x and a 4-bit y into one byte, leaving the
// all-ones byte (0xFF) free to mean "no such position" — the board is
// capped at 15x15 so every real coordinate fits in 4 bits with room to
// spare. A cell packs a 2-bit type, a 2-bit entry direction, and a 4-bit
// color index into a second byte. Every function here is total: there is
// no error return, and Offset reports an out-of-range result as Invalid
// rather than panicking.
package packed
