package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func defaultFilter(t *testing.T) *Filter {
	t.Helper()
	filter, err := NewFilter([]string{".tsx", ".TSX"})
	if err != nil {
		t.Fatalf("NewFilter failed: %v", err)
	}
	return filter
}

func createFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("export {}"), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", name, err)
		}
	}
}

func TestFilterMatch(t *testing.T) {
	filter := defaultFilter(t)

	tests := []struct {
		name string
		want bool
	}{
		{"btn-grp.tsx", true},
		{"MB-ICN.TSX", true},
		{".tsx", true},
		{"a.b.tsx", true},
		{"card.Tsx", false},
		{"card.ts", false},
		{"card.tsx.bak", false},
		{"tsx", false},
		{"readme.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.Match(tt.name); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewFilterRejectsEmptyExtensions(t *testing.T) {
	_, err := NewFilter(nil)
	var scanErr *ScanError
	if !errors.As(err, &scanErr) || scanErr.Type != InvalidPattern {
		t.Fatalf("expected INVALID_PATTERN error, got %v", err)
	}
}

func TestNewFilterRejectsBrokenPattern(t *testing.T) {
	_, err := NewFilter([]string{".ts[x"})
	var scanErr *ScanError
	if !errors.As(err, &scanErr) || scanErr.Type != InvalidPattern {
		t.Fatalf("expected INVALID_PATTERN error, got %v", err)
	}
}

func TestFilterExtensionsReturnsCopy(t *testing.T) {
	filter := defaultFilter(t)
	exts := filter.Extensions()
	exts[0] = ".jsx"
	if filter.Extensions()[0] != ".tsx" {
		t.Error("mutating returned extensions changed the filter")
	}
}

func TestScanSelectsComponentFiles(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, "btn-grp.tsx", "OTP-INPT.TSX", "card.tsx", "notes.md", "index.ts", "odd.Tsx")

	entries, err := Scan(tmpDir, defaultFilter(t))
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
		if e.FullPath != filepath.Join(tmpDir, e.Name) {
			t.Errorf("expected full path %s, got %s", filepath.Join(tmpDir, e.Name), e.FullPath)
		}
	}

	want := []string{"OTP-INPT.TSX", "btn-grp.tsx", "card.tsx"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestScanDoesNotRecurse(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, "top.tsx")

	nested := filepath.Join(tmpDir, "nested")
	if err := os.Mkdir(nested, 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}
	createFiles(t, nested, "deep.tsx")

	entries, err := Scan(tmpDir, defaultFilter(t))
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(entries) != 1 || entries[0].Name != "top.tsx" {
		t.Errorf("expected only top.tsx, got %v", entries)
	}
}

func TestScanSelectsByNameOnly(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmpDir, "folder.tsx"), 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	entries, err := Scan(tmpDir, defaultFilter(t))
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(entries) != 1 || entries[0].Name != "folder.tsx" {
		t.Errorf("expected directory entry folder.tsx, got %v", entries)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := Scan(missing, defaultFilter(t))

	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected *ScanError, got %T (%v)", err, err)
	}
	if scanErr.Type != DirectoryNotFound {
		t.Errorf("expected DIRECTORY_NOT_FOUND, got %s", scanErr.Type)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("expected error to unwrap to os.ErrNotExist")
	}
}

func TestScanFileInsteadOfDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, "plain.tsx")

	_, err := Scan(filepath.Join(tmpDir, "plain.tsx"), defaultFilter(t))

	var scanErr *ScanError
	if !errors.As(err, &scanErr) || scanErr.Type != DirectoryNotFound {
		t.Fatalf("expected DIRECTORY_NOT_FOUND error, got %v", err)
	}
	if !strings.Contains(err.Error(), "path is not a directory") {
		t.Errorf("expected reason in message, got %q", err.Error())
	}
}

// genBaseName generates short lower-case names.
func genBaseName() gopter.Gen {
	return gen.IntRange(1, 12).FlatMap(func(length interface{}) gopter.Gen {
		return gen.SliceOfN(length.(int), gen.AlphaLowerChar())
	}, reflect.TypeOf([]rune{})).Map(func(chars []rune) string {
		return string(chars)
	})
}

// genEntryName generates names carrying accepted and rejected extensions.
func genEntryName() gopter.Gen {
	return gopter.CombineGens(
		genBaseName(),
		gen.OneConstOf(".tsx", ".TSX", ".ts", ".jsx", ".md", ".Tsx", ""),
	).Map(func(vals []interface{}) string {
		return vals[0].(string) + vals[1].(string)
	})
}

func TestScanReturnsExactlyMatchingNames(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("scan returns every name ending in .tsx or .TSX and nothing else", prop.ForAll(
		func(names []string) bool {
			tmpDir := t.TempDir()

			unique := make(map[string]bool)
			for _, name := range names {
				unique[name] = true
			}

			var want []string
			for name := range unique {
				if err := os.WriteFile(filepath.Join(tmpDir, name), nil, 0644); err != nil {
					t.Logf("Failed to create %s: %v", name, err)
					return false
				}
				if strings.HasSuffix(name, ".tsx") || strings.HasSuffix(name, ".TSX") {
					want = append(want, name)
				}
			}
			sort.Strings(want)

			entries, err := Scan(tmpDir, defaultFilter(t))
			if err != nil {
				t.Logf("Scan failed: %v", err)
				return false
			}

			got := make([]string, 0, len(entries))
			for _, e := range entries {
				got = append(got, e.Name)
			}

			if len(got) != len(want) {
				t.Logf("expected %v, got %v", want, got)
				return false
			}
			for i := range got {
				if got[i] != want[i] {
					t.Logf("expected %v, got %v", want, got)
					return false
				}
			}
			return true
		},
		gen.SliceOfN(8, genEntryName()),
	))

	properties.TestingRun(t)
}
