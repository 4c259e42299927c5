package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCacheReusesTable(t *testing.T) {
	path := writeCSV(t, csvRows)
	c := NewCache()

	t1, err := c.Get(path)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	t2, err := c.Get(path)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if t1 != t2 {
		t.Fatalf("second Get returned a different table; cache miss")
	}
}

func TestCacheInvalidateReloads(t *testing.T) {
	path := writeCSV(t, csvRows)
	c := NewCache()

	t1, err := c.Get(path)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	// Shrink the file; only an invalidated cache should see it.
	shorter := "price,odometer,model,condition,type,model_year\n100,200,Kia Rio,good,sedan,2015\n"
	if err := os.WriteFile(path, []byte(shorter), 0o644); err != nil {
		t.Fatalf("rewrite csv: %v", err)
	}

	t2, err := c.Get(path)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if t2 != t1 {
		t.Fatalf("Get after rewrite should still serve the cached table")
	}

	c.Invalidate(path)
	t3, err := c.Get(path)
	if err != nil {
		t.Fatalf("Get after Invalidate: %v", err)
	}
	if t3.Len() != 1 {
		t.Fatalf("reloaded table has %d rows, want 1", t3.Len())
	}
}

func TestCacheLoadFailureNotCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vehicles.csv")
	c := NewCache()

	_, err := c.Get(path)
	var dse *DataSourceError
	if !errors.As(err, &dse) {
		t.Fatalf("expected DataSourceError, got %v", err)
	}

	// Create the file afterwards; Get should now succeed without Invalidate.
	if err := os.WriteFile(path, []byte("price,odometer,model,condition,type,model_year\n1,2,A B,good,sedan,2000\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := c.Get(path); err != nil {
		t.Fatalf("Get after creating file: %v", err)
	}
}
