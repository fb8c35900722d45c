package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stagseek/internal/round"
)

func TestFileStore_MissingFileIsNoResult(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "none.json"))
	_, ok, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("Load reported a result for a missing file")
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", Key+".json")
	s := NewFileStore(path)

	first := round.Result{Score: 2, RemainingTime: 0, TotalTime: 45}
	second := round.Result{Score: 5, RemainingTime: 17, TotalTime: 45}
	if err := s.Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := s.Load()
	if err != nil || !ok {
		t.Fatalf("Load = %v, %v, %v", got, ok, err)
	}
	if got != second {
		t.Errorf("Load = %+v, want %+v", got, second)
	}
}

func TestFileStore_JSONShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.json")
	if err := NewFileStore(path).Save(round.Result{Score: 3, RemainingTime: 9, TotalTime: 45}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"score": 3`, `"remainingTime": 9`, `"totalTime": 45`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("saved JSON %s missing %s", data, field)
		}
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := NewFileStore(path).Load(); err == nil || ok {
		t.Errorf("Load of corrupt file = ok %v, err %v; want error", ok, err)
	}
}

func TestMemory(t *testing.T) {
	var m Memory
	if _, ok, _ := m.Load(); ok {
		t.Error("empty Memory reported a result")
	}
	want := round.Result{Score: 1, RemainingTime: 0, TotalTime: 45}
	_ = m.Save(want)
	got, ok, _ := m.Load()
	if !ok || got != want {
		t.Errorf("Load = %+v, %v", got, ok)
	}
}

func TestStore_RoundPersistsThroughFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "last.json"))
	r := round.New(nil, s)
	for i := 0; i < round.Duration; i++ {
		r.Tick()
	}
	got, ok, err := s.Load()
	if err != nil || !ok {
		t.Fatalf("Load = %v, %v", ok, err)
	}
	want := round.Result{Score: 0, RemainingTime: 0, TotalTime: 45}
	if got != want {
		t.Errorf("persisted %+v, want %+v", got, want)
	}
}
