package resolver

import "sort"

// IndexEntry maps one normalized keyword to its hex value.
type IndexEntry struct {
	Keyword string
	Hex     string
}

// KeywordIndex is the flat alias table. Entries are ordered by keyword length,
// longest first; ties keep dictionary order.
type KeywordIndex struct {
	entries []IndexEntry
}

// NewKeywordIndex normalizes every keyword of every entry.
func NewKeywordIndex(entries []ColorEntry) *KeywordIndex {
	var flat []IndexEntry
	for _, e := range entries {
		for _, kw := range e.Keywords {
			flat = append(flat, IndexEntry{Keyword: Normalize(kw), Hex: e.Hex})
		}
	}
	sort.SliceStable(flat, func(i, j int) bool {
		return len(flat[i].Keyword) > len(flat[j].Keyword)
	})
	return &KeywordIndex{entries: flat}
}

// Lookup returns the hex of the first keyword equal to normalized.
// Matching is exact; prefixes and substrings never match.
func (idx *KeywordIndex) Lookup(normalized string) (string, bool) {
	for _, e := range idx.entries {
		if e.Keyword == normalized {
			return e.Hex, true
		}
	}
	return "", false
}

// Len returns the number of keyword aliases.
func (idx *KeywordIndex) Len() int {
	return len(idx.entries)
}

// Entries returns a copy of the index in lookup order.
func (idx *KeywordIndex) Entries() []IndexEntry {
	return append([]IndexEntry(nil), idx.entries...)
}
