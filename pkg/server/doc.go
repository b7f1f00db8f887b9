// Package server runs Wayfind applications over HTTP and WebSocket.
//
// The serving model is one router per connection: the browser loads the
// entry document and the embedded thin client, the client opens a WebSocket
// and handshakes with its current location, and the server builds a session
// holding a private history adapter, renderer, and router over the shared
// route table. Navigation events flow up as frames; container patches and
// history commands flow back down.
//
// The session is deliberately the meeting point of the wire and the routing
// core: it implements view.PatchSink, so renderer output becomes patch
// frames, and history.Bridge, so adapter URL changes become history frames.
//
// Deployment contract: under StrategyPath the server resolves every unknown
// GET path to the entry document, which is what makes deep links and
// refreshes on routed URLs work. Under StrategyFragment only "/" serves the
// entry document, since routes live in the fragment.
package server
