// Package view renders components into a single mount container.
//
// The renderer is the only writer to the container: route handlers and
// components produce virtual trees, and the renderer decides what patches
// reach the client. Each successful mount yields a Handle owning the view's
// teardown, which runs exactly once before the next view becomes visible.
package view
