package history

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/addralias/internal/fingerprint"
)

// setupTestStore creates a temporary store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database in new directory", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "newdir", "subdir")
		s, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer s.Close()

		if _, err := os.Stat(filepath.Join(dbDir, DBFileName)); err != nil {
			t.Errorf("database file was not created: %v", err)
		}
		if s.Path() != filepath.Join(dbDir, DBFileName) {
			t.Errorf("Path() = %q", s.Path())
		}
	})

	t.Run("fails when database is missing and creation is disabled", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		opts.CreateIfNotExists = false
		if _, err := Open(t.TempDir(), opts); err == nil {
			t.Error("expected error for missing database")
		}
	})

	t.Run("reopens existing database", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		s, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		if err := s.Save(t.Context(), fingerprint.Derive("deadbeef"), false); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		_ = s.Close()

		opts := DefaultOptions()
		opts.CreateIfNotExists = false
		s, err = Open(dir, opts)
		if err != nil {
			t.Fatalf("failed to reopen database: %v", err)
		}
		defer s.Close()

		entries, err := s.List(t.Context(), 0)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("len(entries) = %d, want 1", len(entries))
		}
	})
}

func TestStoreSaveAndList(t *testing.T) {
	t.Parallel()

	s := setupTestStore(t)
	ctx := t.Context()

	for _, addr := range []string{"deadbeef", "0xAB12", "zz"} {
		if err := s.Save(ctx, fingerprint.Derive(addr), false); err != nil {
			t.Fatalf("Save(%q) error = %v", addr, err)
		}
	}
	if err := s.Save(ctx, fingerprint.Derive("deadbeef", fingerprint.WithSeed("x")), true); err != nil {
		t.Fatalf("Save(seeded) error = %v", err)
	}

	t.Run("all entries newest first", func(t *testing.T) {
		t.Parallel()

		entries, err := s.List(ctx, 0)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(entries) != 4 {
			t.Fatalf("len(entries) = %d, want 4", len(entries))
		}
		first := entries[0]
		if !first.Seeded {
			t.Error("newest entry should be the seeded one")
		}
		if first.Report.Alias != "Zogxohfogrec" {
			t.Errorf("Alias = %q, want Zogxohfogrec", first.Report.Alias)
		}
		if first.CreatedAt.IsZero() {
			t.Error("CreatedAt should be parsed")
		}
		last := entries[3]
		if last.Seeded || last.Report.Alias != "Jugmugqugnob" {
			t.Errorf("oldest entry = %+v", last.Report)
		}
	})

	t.Run("limit", func(t *testing.T) {
		t.Parallel()

		entries, err := s.List(ctx, 2)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(entries) != 2 {
			t.Errorf("len(entries) = %d, want 2", len(entries))
		}
	})

	t.Run("report survives round trip", func(t *testing.T) {
		t.Parallel()

		entries, err := s.Find(ctx, "2baf1f40")
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		got := entries[len(entries)-1].Report
		want := fingerprint.Derive("deadbeef")
		if got.Fingerprint != want.Fingerprint || got.Entropy != want.Entropy {
			t.Errorf("report = %+v, want %+v", got, want)
		}
		if len(got.Identicon) != len(want.Identicon) {
			t.Errorf("identicon rows = %d, want %d", len(got.Identicon), len(want.Identicon))
		}
	})

	t.Run("non-hex advisory survives round trip", func(t *testing.T) {
		t.Parallel()

		entries, err := s.Find(ctx, "zafkugpebrud")
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if !entries[0].Report.HasAdvisories() {
			t.Error("advisories were lost")
		}
	})
}

func TestStoreFind(t *testing.T) {
	t.Parallel()

	s := setupTestStore(t)
	ctx := t.Context()

	if err := s.Save(ctx, fingerprint.Derive("deadbeef"), false); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "alias exact", key: "Jugmugqugnob"},
		{name: "alias case-insensitive", key: "JUGMUGQUGNOB"},
		{name: "short id", key: "2baf1f40"},
		{name: "short id uppercase", key: "2BAF1F40"},
		{name: "short id with spaces", key: "  2baf1f40 "},
		{name: "unknown key", key: "Nothing", wantErr: true},
		{name: "empty key", key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entries, err := s.Find(ctx, tt.key)
			if tt.wantErr {
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("Find(%q) error = %v, want ErrNotFound", tt.key, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Find(%q) error = %v", tt.key, err)
			}
			if len(entries) != 1 || entries[0].Report.ShortID != "2baf1f40" {
				t.Errorf("Find(%q) = %+v", tt.key, entries)
			}
		})
	}
}

func TestStoreSaveNil(t *testing.T) {
	t.Parallel()

	s := setupTestStore(t)
	if err := s.Save(t.Context(), nil, false); err == nil {
		t.Error("expected error for nil report")
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantZero bool
	}{
		{name: "sqlite default", input: "2026-01-02 15:04:05"},
		{name: "iso with Z", input: "2026-01-02T15:04:05Z"},
		{name: "rfc3339 offset", input: "2026-01-02T15:04:05+09:00"},
		{name: "garbage", input: "yesterday", wantZero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseTimestamp(tt.input)
			if got.IsZero() != tt.wantZero {
				t.Errorf("parseTimestamp(%q) = %v, wantZero %v", tt.input, got, tt.wantZero)
			}
		})
	}
}
