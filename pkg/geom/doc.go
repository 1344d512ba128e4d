// Package geom provides the small rigid-body math kit used to place
// implant components: 3D vectors, 4x4 homogeneous transforms, planes,
// and axis-aligned boxes. Angles are given in degrees because the
// vendor calibration sheets specify them that way.
package geom
