// Package hcl provides the concrete HCL implementation of the config
// package's Loader and Exporter interfaces. It parses pattern library files,
// evaluating their locals, and writes expanded patterns back out as HCL.
package hcl
