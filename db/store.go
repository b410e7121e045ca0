package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// The load path never updates an existing row: every operation here looks up
// by natural key and inserts only when absent, so rerunning a partially
// completed pull resumes by skipping what is already there.

// UpsertAuthor inserts an author by external id when absent. The returned bool
// reports whether a row was created.
func UpsertAuthor(gdb *gorm.DB, id uint, name *string) (Author, bool, error) {
	var author Author
	err := gdb.Where("id = ?", id).First(&author).Error
	if err == nil {
		return author, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Author{}, false, fmt.Errorf("failed to look up author %d: %w", id, err)
	}

	author = Author{ID: id, Name: name}
	if err := gdb.Create(&author).Error; err != nil {
		return Author{}, false, fmt.Errorf("failed to insert author %d: %w", id, err)
	}
	return author, true, nil
}

// UpsertMod inserts a mod by external id when absent. An existing row is
// returned as-is and never refreshed with newer field values.
func UpsertMod(gdb *gorm.DB, mod Mod) (Mod, bool, error) {
	var existing Mod
	err := gdb.Where("id = ?", mod.ID).First(&existing).Error
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Mod{}, false, fmt.Errorf("failed to look up mod %d: %w", mod.ID, err)
	}

	if err := gdb.Create(&mod).Error; err != nil {
		return Mod{}, false, fmt.Errorf("failed to insert mod %d (%s): %w", mod.ID, mod.Name, err)
	}
	return mod, true, nil
}

// UpsertModIDStr links an alias string to a mod when the alias is not known yet.
func UpsertModIDStr(gdb *gorm.DB, alias string, modID uint) error {
	var existing ModIDStr
	err := gdb.Where("modid_str = ?", alias).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up mod-id alias %q: %w", alias, err)
	}

	if err := gdb.Create(&ModIDStr{ModIDStr: alias, ModID: modID}).Error; err != nil {
		return fmt.Errorf("failed to insert mod-id alias %q: %w", alias, err)
	}
	return nil
}

// UpsertTag inserts a tag label when absent and returns the stored row.
func UpsertTag(gdb *gorm.DB, label string) (Tag, bool, error) {
	var tag Tag
	err := gdb.Where("tag = ?", label).First(&tag).Error
	if err == nil {
		return tag, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Tag{}, false, fmt.Errorf("failed to look up tag %q: %w", label, err)
	}

	tag = Tag{Tag: label}
	if err := gdb.Create(&tag).Error; err != nil {
		return Tag{}, false, fmt.Errorf("failed to insert tag %q: %w", label, err)
	}
	return tag, true, nil
}

// AttachTag adds a tag to a mod's tag set. The join table's composite primary
// key (mod_id, tag_id) makes re-attaching on a rerun a silent no-op.
func AttachTag(gdb *gorm.DB, mod *Mod, tag Tag) error {
	if err := gdb.Model(mod).Association("Tags").Append(&tag); err != nil {
		return fmt.Errorf("failed to attach tag %q to mod %d: %w", tag.Tag, mod.ID, err)
	}
	return nil
}

// RecordVersion inserts a released version string for a mod. Version strings
// are unique store-wide; a duplicate is rejected by the constraint. The sync
// pipeline does not call this yet — the API's list endpoint carries no version
// strings — but the read paths and schema support it.
func RecordVersion(gdb *gorm.DB, modID uint, version string) error {
	if err := gdb.Create(&ModVersion{ModID: modID, Version: version}).Error; err != nil {
		return fmt.Errorf("failed to insert version %q for mod %d: %w", version, modID, err)
	}
	return nil
}
