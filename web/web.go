// Package web holds the static single-page UI served at "/".
package web

import "embed"

// Files contains index.html and script.js.
//
//go:embed index.html script.js
var Files embed.FS
