// Package history wraps the platform's navigation primitives - URL mutation
// without reload plus the back/forward notification channel - behind one
// Adapter contract with interchangeable strategies.
//
// The path strategy uses full resolvable URLs and requires the serving layer
// to route unknown paths to the entry document; the fragment strategy encodes
// the route after "#" and needs no server cooperation. Both guarantee that
// programmatic navigation updates CurrentPath synchronously and never fires
// the transition callback, so the router cannot feed back into itself.
package history
