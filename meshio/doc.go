// Package meshio reads and writes the Geomview OFF surface-mesh format,
// grounded on original_source/examples/surfacemesh's readOFF/writeOFF
// pair — the original CASC's own mesh round-trip demo.
//
// It is deliberately never imported by core: a simplicial complex has no
// notion of vertex coordinates or file formats, and this package exists
// purely as a convenience for examples that want to build a Complex from
// (or export one to) a real triangulated surface.
package meshio
