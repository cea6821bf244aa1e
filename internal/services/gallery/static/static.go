// Package static embeds the gallery stylesheet and portrait assets.
package static

import "embed"

// FS exposes gallery static assets for HTTP serving.
//
//go:embed *.css portraits/*.svg
var FS embed.FS
