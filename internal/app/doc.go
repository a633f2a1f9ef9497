// Package app wires application dependencies for the CLI.
//
// It builds the fixture registry and workspace store from Config, exposing
// them via the Wire struct for commands to use.
package app
