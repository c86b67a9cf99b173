package propdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/strata-data/reservoir.model/internal/deck"
	"github.com/strata-data/reservoir.model/internal/grid"
	"github.com/strata-data/reservoir.model/internal/monitoring"
	"github.com/strata-data/reservoir.model/internal/props"
	"github.com/strata-data/reservoir.model/internal/units"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	os.Exit(m.Run())
}

func builtEngine(t *testing.T) *props.Engine {
	t.Helper()
	e := props.New(grid.MustNew(2, 2, 1), units.Metric())
	records := []deck.Record{
		deck.Assignment("SATNUM", 1, 1, 2, 2),
		deck.Assignment("PORO", 0.1, 0.2, 0.3, 0.4),
		{Keyword: "MULTFLT", Rows: [][]deck.Item{
			{deck.String("F1"), deck.Number(0.5)},
		}},
	}
	if err := e.ProcessAll(records); err != nil {
		t.Fatal(err)
	}
	return e
}

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "props.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	s := openStore(t)

	id, err := s.SaveSnapshot("base-case", builtEngine(t))
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if id == "" {
		t.Fatal("empty snapshot id")
	}

	satnum, err := s.LoadIntValues(id, "satnum")
	if err != nil {
		t.Fatalf("LoadIntValues: %v", err)
	}
	want := []int{1, 1, 2, 2}
	for i := range want {
		if satnum[i] != want[i] {
			t.Fatalf("SATNUM = %v, want %v", satnum, want)
		}
	}

	poro, err := s.LoadDoubleValues(id, "PORO")
	if err != nil {
		t.Fatalf("LoadDoubleValues: %v", err)
	}
	if len(poro) != 4 || poro[2] != 0.3 {
		t.Errorf("PORO = %v", poro)
	}
}

func TestListSnapshots(t *testing.T) {
	s := openStore(t)

	e := builtEngine(t)
	if _, err := s.SaveSnapshot("run-a", e); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveSnapshot("run-b", e); err != nil {
		t.Fatal(err)
	}

	infos, err := s.ListSnapshots()
	if err != nil {
		t.Fatalf("ListSnapshots: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(infos))
	}
	for _, info := range infos {
		if info.NX != 2 || info.NY != 2 || info.NZ != 1 {
			t.Errorf("snapshot dims = %dx%dx%d", info.NX, info.NY, info.NZ)
		}
		if info.UnitSystem != "METRIC" {
			t.Errorf("unit system = %s", info.UnitSystem)
		}
	}
}

func TestPropertyNamesOrder(t *testing.T) {
	s := openStore(t)

	id, err := s.SaveSnapshot("ordered", builtEngine(t))
	if err != nil {
		t.Fatal(err)
	}

	names, err := s.PropertyNames(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "SATNUM" || names[1] != "PORO" {
		t.Errorf("property names = %v", names)
	}
}

func TestLoadMissingProperty(t *testing.T) {
	s := openStore(t)

	id, err := s.SaveSnapshot("sparse", builtEngine(t))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.LoadIntValues(id, "EQLNUM"); err == nil {
		t.Error("expected error for property absent from snapshot")
	}
	if _, err := s.LoadDoubleValues("no-such-id", "PORO"); err == nil {
		t.Error("expected error for unknown snapshot")
	}
}
