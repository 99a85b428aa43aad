package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/claimlens/claimlens/internal/model"
)

// mockChecker implements Checker
type mockChecker struct {
	mu       sync.Mutex
	checked  []string
	failPath string
}

func (m *mockChecker) CheckDocument(ctx context.Context, path string) (*model.Report, error) {
	m.mu.Lock()
	m.checked = append(m.checked, path)
	m.mu.Unlock()

	if path == m.failPath {
		return nil, errors.New("checker failed")
	}
	return &model.Report{Document: path}, nil
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	checker := &mockChecker{}
	processor := NewBatchProcessor(checker, 2)

	paths := []string{"a.txt", "b.txt", "c.txt"}
	results := processor.ProcessPaths(context.Background(), paths)

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	seen := make(map[string]bool)
	for _, res := range results {
		if res.Error != nil {
			t.Errorf("Unexpected error for %s: %v", res.Path, res.Error)
		}
		if res.Report == nil || res.Report.Document != res.Path {
			t.Errorf("Expected report for %s, got %v", res.Path, res.Report)
		}
		seen[res.Path] = true
	}
	for _, path := range paths {
		if !seen[path] {
			t.Errorf("Expected result for %s", path)
		}
	}
}

func TestBatchProcessor_FailureIsolated(t *testing.T) {
	checker := &mockChecker{failPath: "bad.txt"}
	processor := NewBatchProcessor(checker, 2)

	results := processor.ProcessPaths(context.Background(), []string{"good.txt", "bad.txt"})

	failures := 0
	for _, res := range results {
		if res.GetError() != nil {
			failures++
			if res.Path != "bad.txt" {
				t.Errorf("Expected only bad.txt to fail, got %s", res.Path)
			}
		}
	}
	if failures != 1 {
		t.Errorf("Expected 1 failure, got %d", failures)
	}
	if len(checker.checked) != 2 {
		t.Errorf("Expected all documents attempted, got %d", len(checker.checked))
	}
}

func TestBatchProcessor_EmptyPaths(t *testing.T) {
	processor := NewBatchProcessor(&mockChecker{}, 2)

	results := processor.ProcessPaths(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	listPath := filepath.Join(t.TempDir(), "docs.txt")
	content := `# fact-check queue
report-a.txt

report-b.txt
# comment line
report-a.txt
report-c.txt
`
	if err := os.WriteFile(listPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write list file: %v", err)
	}

	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"report-a.txt", "report-b.txt", "report-c.txt"}
	if len(paths) != len(want) {
		t.Fatalf("Expected %d paths, got %d: %v", len(want), len(paths), paths)
	}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("Path %d: expected %s, got %s", i, p, paths[i])
		}
	}
}

func TestReadPathsFromFile_Missing(t *testing.T) {
	if _, err := ReadPathsFromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Expected error for missing list file")
	}
}

func TestProcessFile(t *testing.T) {
	listPath := filepath.Join(t.TempDir(), "docs.txt")
	if err := os.WriteFile(listPath, []byte("one.txt\ntwo.txt\n"), 0o644); err != nil {
		t.Fatalf("Failed to write list file: %v", err)
	}

	processor := NewBatchProcessor(&mockChecker{}, 1)
	results, err := processor.ProcessFile(context.Background(), listPath)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 2 {
		t.Errorf("Expected 2 results, got %d", len(results))
	}
}
