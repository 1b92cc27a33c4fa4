// Package web bundles the single-page front end into the binary.
package web

import "embed"

// Assets holds index.html and the static directory.
//
//go:embed index.html static
var Assets embed.FS
