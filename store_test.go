package cashcook

import (
	"os"
	"path/filepath"
	"testing"
)

// testStore checks the Store contract on an empty store.
func testStore(t *testing.T, s Store) {
	t.Helper()

	if _, ok, err := s.Load(Key); err != nil || ok {
		t.Fatalf("Load() on empty store = ok %v, err %v; want absent", ok, err)
	}

	for _, text := range []string{"[]\n", "second \"value\"\n", ""} {
		if err := s.Save(Key, text); err != nil {
			t.Fatalf("Save(%q) error = %v", text, err)
		}
		got, ok, err := s.Load(Key)
		if err != nil || !ok {
			t.Fatalf("Load() after Save = ok %v, err %v", ok, err)
		}
		if got != text {
			t.Errorf("Load() = %q, want %q", got, text)
		}
	}

	if err := s.Save("other", "x"); err != nil {
		t.Fatalf("Save(other) error = %v", err)
	}
	if got, _, _ := s.Load(Key); got != "" {
		t.Errorf("saving another key changed %q to %q", Key, got)
	}
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := NewFileStore(dir)
	testStore(t, s)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(names) != 2 {
		t.Errorf("store directory holds %v, want only the two key files", names)
	}
	if want := filepath.Join(dir, "transactions.json"); s.Path(Key) != want {
		t.Errorf("Path() = %q, want %q", s.Path(Key), want)
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cashcook.db")
	s, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore() error = %v", err)
	}
	testStore(t, s)
	if err := s.Save(Key, "kept"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore() again error = %v", err)
	}
	defer reopened.Close()
	if got, ok, err := reopened.Load(Key); err != nil || !ok || got != "kept" {
		t.Errorf("Load() after reopen = %q, %v, %v; want %q", got, ok, err, "kept")
	}
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("CASHCOOK_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("CASHCOOK_TEST_POSTGRES_DSN not set")
	}
	s, err := OpenPostgresStore(dsn)
	if err != nil {
		t.Fatalf("OpenPostgresStore() error = %v", err)
	}
	defer s.Close()
	if _, err := s.db.Exec(`DELETE FROM kv WHERE name IN ($1, $2)`, Key, "other"); err != nil {
		t.Fatalf("cleanup error = %v", err)
	}
	testStore(t, s)
}

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		driver  string
		wantErr bool
	}{
		{driver: ""},
		{driver: DriverFile},
		{driver: "FILE"},
		{driver: DriverMemory},
		{driver: DriverSQLite},
		{driver: "mongo", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.driver, func(t *testing.T) {
			s, err := OpenStore(tc.driver, filepath.Join(dir, tc.driver+".db"), "")
			if (err != nil) != tc.wantErr {
				t.Fatalf("OpenStore(%q) error = %v, wantErr %v", tc.driver, err, tc.wantErr)
			}
			if err != nil {
				return
			}
			defer CloseStore(s)
			l, err := Open(s)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			mustAdd(t, l, Draft{Description: "coffee", Amount: "2.5"})
			if l.Err() != nil {
				t.Errorf("persist error = %v", l.Err())
			}
		})
	}
}
