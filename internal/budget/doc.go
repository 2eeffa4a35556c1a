// Package budget parses a tiny demo flag set: --max-complexity and
// --iterations. No other package in this module imports it, and it is
// not a general-purpose configuration layer for the library itself.
package budget
