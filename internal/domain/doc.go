// Package domain holds the posterization core: level selection, bucket
// boundary derivation, the 256-entry luma lookup table, and the pixel mapper.
//
// A note on the -k (keep) flag: the upstream README's prose for its first
// example swaps which output array belongs to which flag state. The behavior
// implemented here follows the actual arithmetic: without -k each selected
// level keeps its canonical 11-grid value (level*23), and with -k the
// surviving buckets are re-spaced evenly across 0-255.
package domain
