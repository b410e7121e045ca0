package cmd

import (
	"fmt"

	"github.com/violet4/VSModPuller/db"
	"github.com/violet4/VSModPuller/moddb"
)

// authorIndex resolves a mod's author display name to the raw author record.
type authorIndex map[string]moddb.Author

// buildAuthorIndex indexes the authors collection by display name. Accounts
// without a name can never be referenced by a mod record and are skipped.
func buildAuthorIndex(authors []moddb.Author) authorIndex {
	idx := make(authorIndex, len(authors))
	for _, a := range authors {
		if a.Name == nil {
			continue
		}
		idx[*a.Name] = a
	}
	return idx
}

// mappedMod is one raw mod record reshaped for storage: the entity fields with
// the author reference resolved, plus the list-valued fields that are stored
// as separate related rows.
type mappedMod struct {
	mod     db.Mod
	author  moddb.Author
	aliases []string
	tags    []string
}

// mapMod normalizes a raw API record. An author name missing from the index
// or a malformed lastreleased value fails the whole record; there is no
// partial fallback.
func mapMod(raw moddb.Mod, idx authorIndex) (mappedMod, error) {
	author, ok := idx[raw.Author]
	if !ok {
		return mappedMod{}, fmt.Errorf("mod %d (%s): author %q not present in authors collection", raw.ModID, raw.Name, raw.Author)
	}

	released, err := db.ParseReleaseTime(raw.LastReleased)
	if err != nil {
		return mappedMod{}, fmt.Errorf("mod %d (%s): %w", raw.ModID, raw.Name, err)
	}

	return mappedMod{
		mod: db.Mod{
			ID:             raw.ModID,
			AssetID:        raw.AssetID,
			Name:           raw.Name,
			Summary:        raw.Summary,
			AuthorID:       author.UserID,
			URLAlias:       raw.URLAlias,
			Downloads:      raw.Downloads,
			Follows:        raw.Follows,
			TrendingPoints: raw.TrendingPoints,
			CommentCount:   raw.Comments, // "comments" in the API
			Logo:           raw.Logo,
			Side:           db.InstallSide(raw.Side),
			ModType:        db.ModType(raw.Type), // "type" in the API
			LastReleased:   db.NewUnixTime(released),
		},
		author:  author,
		aliases: raw.ModIDStrs,
		tags:    raw.Tags,
	}, nil
}
