// Package views embeds the HTML templates of the upload UI.
package views

import "embed"

//go:embed *.html
var FS embed.FS
