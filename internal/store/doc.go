// Package store persists materialized fixtures and their manifest.
//
// A Workspace is a plain directory the user opens in the editor under test.
// Fixture bodies and manifest.json are written via a temp file then rename,
// so a half-written file never replaces a good one. All methods are
// concurrency-safe via internal locking.
package store
