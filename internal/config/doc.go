// Package config defines the format-agnostic model of a pattern library,
// along with the interfaces (Loader, Exporter) for reading libraries from and
// writing expanded patterns to a concrete file format.
//
// Concrete implementations of the interfaces, such as for HCL, are provided
// in separate packages.
package config
