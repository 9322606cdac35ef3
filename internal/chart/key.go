package chart

import (
	"fmt"

	"github.com/specialistvlad/knitchart/internal/stitch"
)

// Entry is one line of a key: a symbol and what it means on each side.
type Entry struct {
	Symbol string
	stitch.Meaning
}

// Key maps the symbols a chart uses to their meanings, in first-seen order.
type Key struct {
	entries []Entry
	index   map[string]int
}

// NewKey filters the canonical key down to the given symbols. Every symbol
// must be one a stitch can draw.
func NewKey(symbols ...string) (*Key, error) {
	canonical := stitch.CanonicalKey()
	k := &Key{index: make(map[string]int, len(symbols))}
	for _, s := range symbols {
		if _, dup := k.index[s]; dup {
			continue
		}
		meaning, ok := canonical[s]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, s)
		}
		k.index[s] = len(k.entries)
		k.entries = append(k.entries, Entry{Symbol: s, Meaning: meaning})
	}
	return k, nil
}

// Entries returns the key in order.
func (k *Key) Entries() []Entry {
	return append([]Entry(nil), k.entries...)
}

// Symbols returns the symbols of the key in order.
func (k *Key) Symbols() []string {
	out := make([]string, len(k.entries))
	for i, e := range k.entries {
		out[i] = e.Symbol
	}
	return out
}

// Len is the number of symbols in the key.
func (k *Key) Len() int { return len(k.entries) }

// Lookup returns the meaning of a symbol in the key.
func (k *Key) Lookup(symbol string) (stitch.Meaning, error) {
	i, ok := k.index[symbol]
	if !ok {
		return stitch.Meaning{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return k.entries[i].Meaning, nil
}
