// Package overlay tracks floating copies of list entries. Floating tokens are
// snapshots: they never refer back to the list and never affect what gets
// finalized.
package overlay

import (
	"strconv"

	"foodlist-cli/internal/model"
)

type Token struct {
	// Key is derived from the spawn position and is unique for the life of the
	// Manager; the token's identity for removal is still its index.
	Key   string
	Entry model.Entry
}

type Manager struct {
	tokens []Token
	spawns int
}

func NewManager() *Manager { return &Manager{} }

// Spawn appends a copy of e.
func (m *Manager) Spawn(e model.Entry) Token {
	tok := Token{Key: "float-" + strconv.Itoa(m.spawns), Entry: e}
	m.spawns++
	m.tokens = append(m.tokens, tok)
	return tok
}

// ReleaseAt removes the token at position i. It reports false when i no
// longer names a token, e.g. a second release gesture on the same slot.
func (m *Manager) ReleaseAt(i int) bool {
	if i < 0 || i >= len(m.tokens) {
		return false
	}
	m.tokens = append(m.tokens[:i:i], m.tokens[i+1:]...)
	return true
}

func (m *Manager) Len() int { return len(m.tokens) }

func (m *Manager) Tokens() []Token {
	out := make([]Token, len(m.tokens))
	copy(out, m.tokens)
	return out
}

func (m *Manager) Reset() {
	m.tokens = nil
	m.spawns = 0
}
