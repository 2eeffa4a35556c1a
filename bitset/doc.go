// Package bitset provides FixedBitSet, a fixed-capacity set of bit
// positions backed by 64-bit blocks. It is a standalone utility: no
// other package in this module imports it.
package bitset
