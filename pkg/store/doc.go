// Package store provides the key-value collaborators route handlers fetch
// view data from: an in-memory map, an embedded bbolt database, and an S3
// bucket, all behind one Store interface.
package store
