package index

import "strconv"

// monarch is the shared search fixture: a tiny record type with a title, a
// year, and a body, all of which are indexed.
type monarch struct {
	title string
	year  int
	body  string
}

func (m monarch) SearchStrings() []string {
	return []string{m.title, strconv.Itoa(m.year), m.body}
}

var monarchs = []monarch{
	{"Harold Godwinson", 1066, "Last crowned Anglo-Saxon king of England."},
	{"Edgar Ætheling", 1066, "Last male member of the royal house of Cerdic of Wessex."},
	{"William the Conqueror", 1066, "First Norman monarch of England."},
	{"William Rufus", 1087, "Third son of William the Conqueror."},
	{"Henry Beauclerc", 1100, "Fourth son of William the Conqueror."},
}

func newMonarchIndex(opts Options) *SearchIndex[int] {
	idx := New[int](opts)
	for i, m := range monarchs {
		idx.Insert(i, m)
	}
	return idx
}

// newWordIndex indexes each word under its own key, for the autocomplete
// fixtures.
func newWordIndex(opts Options, words ...string) *SearchIndex[int] {
	idx := New[int](opts)
	for i, w := range words {
		idx.Insert(i, Strings{w})
	}
	return idx
}
