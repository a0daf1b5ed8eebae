// Package catalog provides the static creature data: the embedded generation
// table and the name list that defines global indices.
package catalog

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
