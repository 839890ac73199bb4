// Package corpus loads record files for the keyscout binary. Two formats
// are supported: a JSON array of records, and a stream of msgpack-encoded
// records for larger corpora.
package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Record is one indexable record: an opaque identifier plus the strings to
// index for it.
type Record struct {
	ID      string   `json:"id" msgpack:"id"`
	Strings []string `json:"strings" msgpack:"s"`
}

// SearchStrings implements the index extraction contract.
func (r Record) SearchStrings() []string { return r.Strings }

// Load reads records from path, dispatching on the file extension: ".json"
// for a JSON array, ".msgpack" or ".bin" for a msgpack record stream.
func Load(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return loadJSON(file)
	case ".msgpack", ".bin":
		return loadMsgpack(file)
	default:
		return nil, fmt.Errorf("unsupported corpus format %q", ext)
	}
}

func loadJSON(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	return valid(records), nil
}

func loadMsgpack(r io.Reader) ([]Record, error) {
	dec := msgpack.NewDecoder(r)
	var records []Record
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode corpus record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
	return valid(records), nil
}

// SaveMsgpack writes records as a msgpack stream, the compact on-disk form
// for large corpora.
func SaveMsgpack(path string, records []Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create corpus: %w", err)
	}
	defer file.Close()

	enc := msgpack.NewEncoder(file)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode corpus record %q: %w", rec.ID, err)
		}
	}
	return nil
}

// valid drops records without an ID; they could never be removed again.
func valid(records []Record) []Record {
	out := records[:0]
	for _, rec := range records {
		if rec.ID == "" {
			log.Warnf("skipping corpus record with empty id")
			continue
		}
		out = append(out, rec)
	}
	return out
}
