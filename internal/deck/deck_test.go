package deck

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestItemJSONRoundTrip(t *testing.T) {
	t.Parallel()

	var items []Item
	if err := json.Unmarshal([]byte(`["FLUXNUM", 3, 2.5]`), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if s, ok := items[0].Str(); !ok || s != "FLUXNUM" {
		t.Errorf("item 0 = %q, %v", s, ok)
	}
	if n, ok := items[1].Int(); !ok || n != 3 {
		t.Errorf("item 1 = %d, %v", n, ok)
	}
	if _, ok := items[2].Int(); ok {
		t.Error("2.5 should not convert to int")
	}
	if v, ok := items[2].Float(); !ok || v != 2.5 {
		t.Errorf("item 2 = %v, %v", v, ok)
	}

	out, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `["FLUXNUM",3,2.5]` {
		t.Errorf("marshal = %s", out)
	}
}

func TestItemRejectsOtherJSON(t *testing.T) {
	t.Parallel()

	var it Item
	if err := json.Unmarshal([]byte(`{"a":1}`), &it); err == nil {
		t.Error("expected error for object item")
	}
}

func TestAssignmentConstructor(t *testing.T) {
	t.Parallel()

	rec := Assignment("SATNUM", 1, 2, 3)
	if rec.Keyword != "SATNUM" || len(rec.Rows) != 1 || len(rec.Rows[0]) != 3 {
		t.Fatalf("unexpected record shape: %+v", rec)
	}
	if v, ok := rec.Rows[0][1].Float(); !ok || v != 2 {
		t.Errorf("value 1 = %v, %v", v, ok)
	}
}

func TestBoxConstructor(t *testing.T) {
	t.Parallel()

	rec := Box(1, 2, 1, 5, 1, 1)
	if rec.Keyword != "BOX" || len(rec.Rows[0]) != 6 {
		t.Fatalf("unexpected record shape: %+v", rec)
	}
	if n, _ := rec.Rows[0][3].Int(); n != 5 {
		t.Errorf("j2 = %d", n)
	}
	if EndBox().Keyword != "ENDBOX" {
		t.Error("EndBox keyword mismatch")
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "deck.json")
	body := `{"records":[
		{"keyword":"SATNUM","rows":[[1,1,2]]},
		{"keyword":"ENDBOX"},
		{"keyword":"ADDREG","rows":[["SATNUM",11,1,"M"]]}
	]}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	recs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[2].Keyword != "ADDREG" {
		t.Errorf("record 2 keyword = %s", recs[2].Keyword)
	}
}

func TestLoadFileRejectsBadInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "deck.yaml")); err == nil {
		t.Error("expected extension error")
	}

	missing := filepath.Join(dir, "missing.json")
	if _, err := LoadFile(missing); err == nil {
		t.Error("expected stat error")
	}

	noKeyword := filepath.Join(dir, "nokw.json")
	if err := os.WriteFile(noKeyword, []byte(`{"records":[{"rows":[[1]]}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(noKeyword); err == nil {
		t.Error("expected missing-keyword error")
	}
}
