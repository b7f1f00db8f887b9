// Package router orchestrates navigation for one mount container.
//
// The router listens for navigation intents (programmatic calls, intercepted
// link activations) and for back/forward transitions reported by the history
// adapter, resolves the resulting path against the route table, and drives
// the view renderer. Navigations are strictly sequential by issuance order:
// a navigation issued while an earlier handler is still pending supersedes
// it, and the superseded handler's result is discarded even if it arrives
// later. Each in-flight resolution carries a generation token compared
// against the router's current generation at commit time.
package router
