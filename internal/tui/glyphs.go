package tui

import (
	"strings"
	"sync"
)

// Terminal apps can't change the user's font, so icons come in two sets:
// Unicode, and ASCII for terminals that render symbols poorly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphItem() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "◆"
}

func glyphPrice() string {
	if glyphs() == glyphSetASCII {
		return "$"
	}
	return "¤"
}

func glyphEdit() string {
	if glyphs() == glyphSetASCII {
		return "e"
	}
	return "✎"
}

func glyphDelete() string {
	if glyphs() == glyphSetASCII {
		return "x"
	}
	return "✕"
}

func glyphPin() string {
	if glyphs() == glyphSetASCII {
		return "^"
	}
	return "⇡"
}

func glyphSelected() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "›"
}
