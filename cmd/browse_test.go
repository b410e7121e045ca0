package cmd

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/violet4/VSModPuller/db"
)

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(key)})
}

// TestTruncateFunction tests the truncate helper function
func TestTruncateFunction(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"Hello World", 5, "He..."},
		{"Hi", 5, "Hi"},
		{"Test", 4, "Test"},
		{"LongString", 7, "Long..."},
		{"", 5, ""},
	}

	for _, test := range tests {
		result := truncate(test.input, test.maxLen)
		if result != test.expected {
			t.Fatalf("truncate(%q, %d) = %q, expected %q", test.input, test.maxLen, result, test.expected)
		}
	}
}

// TestBrowseNavigation tests moving the selection with key messages
func TestBrowseNavigation(t *testing.T) {
	m := newBrowseModel()
	m.loading = false
	m.mods = []db.Mod{
		{ID: 1, Name: "Mod 1"},
		{ID: 2, Name: "Mod 2"},
		{ID: 3, Name: "Mod 3"},
	}

	step := func(key string) {
		t.Helper()
		updated, _ := m.Update(keyMsg(key))
		m = updated.(browseModel)
	}

	step("j")
	if m.selectedIndex != 1 {
		t.Fatal("Navigation down failed")
	}
	step("j")
	step("j") // boundary - shouldn't go beyond last item
	if m.selectedIndex != 2 {
		t.Fatal("Navigation should stop at last item")
	}
	step("k")
	if m.selectedIndex != 1 {
		t.Fatal("Navigation up failed")
	}
	step("k")
	step("k") // boundary - shouldn't go below first item
	if m.selectedIndex != 0 {
		t.Fatal("Navigation should stop at first item")
	}
}

// TestBrowseViewEmptyList tests behavior with an empty database
func TestBrowseViewEmptyList(t *testing.T) {
	m := newBrowseModel()
	m.loading = false

	view := m.View()
	if !strings.Contains(view, "No mods stored") {
		t.Fatalf("View should explain the empty list, got %q", view)
	}
}

// TestBrowseViewError tests that a load error is surfaced
func TestBrowseViewError(t *testing.T) {
	m := newBrowseModel()
	updated, _ := m.Update(errorMsg("boom"))
	m = updated.(browseModel)

	if m.loading {
		t.Fatal("loading should stop on error")
	}
	if !strings.Contains(m.View(), "boom") {
		t.Fatal("View should show the error message")
	}
}
