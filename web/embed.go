// Package web provides the embedded static assets of the voilib client,
// served at /static/.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree. Release builds replace
// its contents with the compiled client bundle.
//
//go:embed all:static
var StaticFS embed.FS
