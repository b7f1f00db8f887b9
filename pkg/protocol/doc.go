// Package protocol defines the wire format between the server and the thin
// browser client: length-prefixed frames carrying JSON payloads.
//
// The client sends a handshake (its location and capabilities) followed by
// navigation events; the server sends patch batches for the mount container
// and history commands (push/replace). Ordinary conditions travel as
// messages; only malformed input produces errors.
package protocol
