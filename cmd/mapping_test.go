package cmd

import (
	"testing"
	"time"

	"github.com/violet4/VSModPuller/db"
	"github.com/violet4/VSModPuller/moddb"
)

func namePtr(s string) *string { return &s }

func rawMod(name, author string) moddb.Mod {
	return moddb.Mod{
		ModID:        10,
		AssetID:      100,
		Name:         name,
		Author:       author,
		Downloads:    1234,
		Follows:      56,
		Comments:     7,
		Side:         "both",
		Type:         "mod",
		LastReleased: "2023-05-01 12:00:00",
		ModIDStrs:    []string{"carryon", "carryon2"},
		Tags:         []string{"crafting", "utility"},
	}
}

func TestBuildAuthorIndex(t *testing.T) {
	authors := []moddb.Author{
		{UserID: 1, Name: namePtr("violet")},
		{UserID: 2, Name: nil}, // nameless accounts are not indexable
		{UserID: 3, Name: namePtr("theysa")},
	}

	idx := buildAuthorIndex(authors)
	if len(idx) != 2 {
		t.Errorf("Expected 2 indexed authors, got %d", len(idx))
	}
	if got, ok := idx["violet"]; !ok || got.UserID != 1 {
		t.Errorf(`idx["violet"] = %+v, %v`, got, ok)
	}
	if _, ok := idx["theysa"]; !ok {
		t.Error(`Expected "theysa" in index`)
	}
}

func TestMapMod(t *testing.T) {
	idx := buildAuthorIndex([]moddb.Author{{UserID: 1, Name: namePtr("violet")}})

	mapped, err := mapMod(rawMod("Carry On", "violet"), idx)
	if err != nil {
		t.Fatalf("mapMod failed: %v", err)
	}

	if mapped.mod.ID != 10 || mapped.mod.AssetID != 100 {
		t.Errorf("External ids not carried: %+v", mapped.mod)
	}
	if mapped.mod.AuthorID != 1 {
		t.Errorf("AuthorID = %d, want 1", mapped.mod.AuthorID)
	}
	if mapped.mod.CommentCount != 7 {
		t.Errorf("CommentCount = %d, want 7 (renamed from comments)", mapped.mod.CommentCount)
	}
	if mapped.mod.ModType != db.TypeMod {
		t.Errorf("ModType = %s, want mod (renamed from type)", mapped.mod.ModType)
	}
	if mapped.mod.Side != db.SideBoth {
		t.Errorf("Side = %s, want both", mapped.mod.Side)
	}

	want := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	if !mapped.mod.LastReleased.Time.Equal(want) {
		t.Errorf("LastReleased = %v, want %v", mapped.mod.LastReleased.Time, want)
	}

	// List-valued fields are split off the entity
	if len(mapped.aliases) != 2 || mapped.aliases[0] != "carryon" {
		t.Errorf("aliases = %v", mapped.aliases)
	}
	if len(mapped.tags) != 2 || mapped.tags[1] != "utility" {
		t.Errorf("tags = %v", mapped.tags)
	}
}

func TestMapModUnknownAuthor(t *testing.T) {
	idx := buildAuthorIndex([]moddb.Author{{UserID: 1, Name: namePtr("violet")}})

	if _, err := mapMod(rawMod("Carry On", "nobody"), idx); err == nil {
		t.Error("Expected error for author missing from the index")
	}
}

func TestMapModBadTimestamp(t *testing.T) {
	idx := buildAuthorIndex([]moddb.Author{{UserID: 1, Name: namePtr("violet")}})

	raw := rawMod("Carry On", "violet")
	raw.LastReleased = "May 1st 2023"
	if _, err := mapMod(raw, idx); err == nil {
		t.Error("Expected error for malformed lastreleased value")
	}
}
