// Package dist embeds the built thin client assets.
package dist

import _ "embed"

// WayfindJS is the thin client JavaScript bundle served at
// /_wayfind/client.js.
//
//go:embed wayfind.js
var WayfindJS []byte
