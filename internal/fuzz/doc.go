// Package fuzztests houses Go fuzz harnesses for the tree arena and the
// snapshot decoder. They guard against panics that escape the documented
// fault paths and against trees that break their structural invariants.
package fuzztests
