package corpus

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

var sample = []Record{
	{ID: "harold", Strings: []string{"Harold Godwinson", "1066"}},
	{ID: "edgar", Strings: []string{"Edgar Ætheling", "1066"}},
	{ID: "william", Strings: []string{"William the Conqueror", "1066"}},
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	content := `[
  {"id": "harold", "strings": ["Harold Godwinson", "1066"]},
  {"id": "edgar", "strings": ["Edgar Ætheling", "1066"]},
  {"id": "william", "strings": ["William the Conqueror", "1066"]}
]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(records, sample) {
		t.Errorf("Load() = %v, want %v", records, sample)
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.msgpack")

	if err := SaveMsgpack(path, sample); err != nil {
		t.Fatalf("SaveMsgpack() error: %v", err)
	}
	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(records, sample) {
		t.Errorf("round trip = %v, want %v", records, sample)
	}
}

func TestLoadSkipsEmptyID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	content := `[
  {"id": "harold", "strings": ["Harold Godwinson"]},
  {"id": "", "strings": ["no identifier"]}
]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(records) != 1 || records[0].ID != "harold" {
		t.Errorf("Load() = %v, want the one valid record", records)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.csv")
	if err := os.WriteFile(path, []byte("id,strings\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRecordSearchStrings(t *testing.T) {
	rec := Record{ID: "x", Strings: []string{"a", "b"}}
	if got := rec.SearchStrings(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("SearchStrings() = %v", got)
	}
}
