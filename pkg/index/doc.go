/*
Package index implements an in-process inverted keyword index with exact,
boolean, live-typing, and fuzzy-tolerant search plus multi-scope
autocomplete. There is no server and no I/O: the index is an ordinary value
owned by the caller.

Records become searchable by implementing Record, which returns the strings
to be indexed. Each string is tokenized into normalized keywords and every
keyword maps to the ordered set of keys whose records contain it.

	type Monarch struct {
		Title string
		Year  uint16
		Body  string
	}

	func (m Monarch) SearchStrings() []string {
		return []string{m.Title, strconv.Itoa(int(m.Year)), m.Body}
	}

	idx := index.New[int](index.DefaultOptions())
	for i, m := range monarchs {
		idx.Insert(i, m)
	}

	keys := idx.Search("william")
	options := idx.Autocomplete("norman c")

Search returns keys; the caller resolves them against its own collection.
Autocomplete returns completed query strings. Unmatched keywords, empty
queries, and no-candidate completions all yield empty slices; they are data,
not failures.

# Concurrency

Every call runs to completion on the caller's goroutine and the index does
no internal locking. A single logical writer is assumed: mutation must be
serialized externally, and read-only queries may run concurrently with each
other but never with a mutation.
*/
package index
