package ident

import (
	"sort"
	"testing"
)

func TestNewMap(t *testing.T) {
	m := NewMap[int]()
	if m == nil {
		t.Fatal("NewMap returned nil")
	}
	if m.Len() != 0 {
		t.Errorf("NewMap().Len() = %d, want 0", m.Len())
	}
}

func TestMapSetAndGet(t *testing.T) {
	m := NewMap[int]()
	m.Set("MyVariable", 42)

	if val, ok := m.Get("MyVariable"); !ok || val != 42 {
		t.Errorf("Get(MyVariable) = %d, %v, want 42, true", val, ok)
	}
	if val, ok := m.Get("myvariable"); !ok || val != 42 {
		t.Errorf("Get(myvariable) = %d, %v, want 42, true", val, ok)
	}
	if val, ok := m.Get("MYVARIABLE"); !ok || val != 42 {
		t.Errorf("Get(MYVARIABLE) = %d, %v, want 42, true", val, ok)
	}
	if val, ok := m.Get("nonexistent"); ok || val != 0 {
		t.Errorf("Get(nonexistent) = %d, %v, want 0, false", val, ok)
	}
}

func TestMapSetOverwrite(t *testing.T) {
	m := NewMap[int]()
	m.Set("MyVar", 10)
	m.Set("myvar", 20)

	if val, ok := m.Get("MyVar"); !ok || val != 20 {
		t.Errorf("Get(MyVar) after overwrite = %d, %v, want 20, true", val, ok)
	}
	if orig := m.GetOriginalKey("MyVar"); orig != "myvar" {
		t.Errorf("GetOriginalKey(MyVar) = %q, want %q", orig, "myvar")
	}
}

func TestMapSetIfAbsent(t *testing.T) {
	m := NewMap[int]()

	if !m.SetIfAbsent("MyVar", 42) {
		t.Error("SetIfAbsent should return true for new key")
	}
	if m.SetIfAbsent("myvar", 100) {
		t.Error("SetIfAbsent should return false for existing key (case-insensitive)")
	}
	if val, _ := m.Get("MYVAR"); val != 42 {
		t.Errorf("value after failed SetIfAbsent = %d, want 42", val)
	}
	if orig := m.GetOriginalKey("myvar"); orig != "MyVar" {
		t.Errorf("GetOriginalKey(myvar) = %q, want %q", orig, "MyVar")
	}
}

func TestMapHasAndDelete(t *testing.T) {
	m := NewMap[string]()
	m.Set("Counter", "x")

	if !m.Has("counter") {
		t.Error("Has(counter) = false, want true")
	}
	m.Delete("COUNTER")
	if m.Has("Counter") {
		t.Error("Has(Counter) after Delete = true, want false")
	}
	if m.Len() != 0 {
		t.Errorf("Len() after Delete = %d, want 0", m.Len())
	}
}

func TestMapKeysSortedAndOriginal(t *testing.T) {
	m := NewMap[int]()
	m.Set("Zebra", 1)
	m.Set("apple", 2)
	m.Set("MANGO", 3)

	keys := m.Keys()
	if len(keys) != 3 {
		t.Fatalf("Keys() returned %d keys, want 3", len(keys))
	}
	if !sort.SliceIsSorted(keys, func(i, j int) bool { return Compare(keys[i], keys[j]) < 0 }) {
		t.Errorf("Keys() not sorted case-insensitively: %v", keys)
	}
	want := map[string]bool{"Zebra": true, "apple": true, "MANGO": true}
	for _, k := range keys {
		if !want[k] {
			t.Errorf("Keys() lost original spelling: got %q", k)
		}
	}
}
