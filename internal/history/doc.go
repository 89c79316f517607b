// Package history persists completed election tallies in SQLite so earlier
// runs can be listed and compared.
//
// The Store owns schema initialization, busy retries, and an advisory file
// lock that serializes writers from concurrent poll invocations. Runs are
// keyed by a random UUID and carry the per-candidate breakdown in first-seen
// order.
//
// Schema changes bump schemaVersion in schema.go; users delete history.db to
// adopt the new schema.
package history
