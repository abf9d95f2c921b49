// Package hcl provides the HCL implementation of the config.Loader
// interface. It reads native HCL (.hcl) and HCL's JSON syntax (.json), so
// plain JSON run files with the documented keys load unchanged.
//
// Attribute values are full HCL expressions evaluated against a small
// context: the constants pi and e plus the numeric functions abs, min, max,
// pow, floor, ceil and log. This allows bounds such as
//
//	x0 = -2 * pi
//	x1 =  2 * pi
//
// The optional params attribute is an object of numbers handed to the
// selected integrand module.
package hcl
