// Package period holds the pure date-range rules behind the picker:
// preset resolution, duration classes, the minimum-span validator and the
// comparison options record.
//
// Allowed here:
// - date arithmetic and lookup tables, all side-effect free
//
// Not allowed here:
// - widget state, callbacks, rendering, or anything that reads the clock
package period
