// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle that turns a pattern
// source into chart output, decoupled from any specific entrypoint like a
// CLI.
package app
