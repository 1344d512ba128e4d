// Package implant models the label spaces of the supported hip stem
// product lines and derives component placement from their vendor
// calibration tables.
//
// Each product line owns a contiguous block of integer labels covering
// its stems, modular heads, resection plane and family range markers.
// A Product value bundles the block layout with the reference points
// and rotations taken from the vendor data sheets; the generic frame
// and mapping operations read those tables, and the few product lines
// whose geometry does not follow the common pattern override the
// operation with a hook.
//
// Calibration data is compiled in. The package therefore distinguishes
// two failure classes: out-of-range requests inside a known label
// family fall back to a defined neutral value (identity map, zero
// point), while queries that violate the labelling contract itself,
// such as asking for the reference points of a head label, panic.
package implant
