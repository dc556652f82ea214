// Package gamedata provides embedded tile definitions and UI translations.
package gamedata

import "embed"

// dataFS embeds the tile catalog and locale files at build time.
//
//go:embed *.json locales/*.po
var dataFS embed.FS
