// Package web embeds the server-rendered templates so the binary ships
// self-contained.
package web

import "embed"

//go:embed templates/*.html
var TemplatesFS embed.FS
