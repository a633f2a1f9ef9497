// Package fixture embeds the sample-file corpus and serves it to the CLI.
//
// Fixtures are compiled into the binary from the fixtures/ directory; an
// index.yaml sidecar carries per-fixture metadata (name, language, target
// filename, purpose). The registry hands out copies, so callers can never
// mutate the embedded corpus.
package fixture
