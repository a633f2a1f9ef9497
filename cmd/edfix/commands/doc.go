// Package commands defines the edfix CLI and wires dependencies for subcommands.
//
// Commands
//
//   - run     Print the indentation demo program's output
//   - list    List the embedded fixtures
//   - cat     Print a fixture body
//   - write   Materialize fixtures into the workspace
//   - verify  Check workspace files against the manifest
//
// # Implementation
//
// The root command builds the dependency graph (fixture registry, workspace
// store, logger) before any subcommand runs, so handlers share one app
// context. Diagnostics go to stderr; everything on stdout is product.
package commands
