package cmd

import (
	"github.com/violet4/VSModPuller/config"
	"github.com/violet4/VSModPuller/db"
	"github.com/violet4/VSModPuller/logger"
	"github.com/violet4/VSModPuller/moddb"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch the ModDB collections and load them into the database",
	Long: `Fetches the mods and authors collections from the ModDB API, using the
on-disk JSON cache when present, and loads normalized records into the local
SQLite database. Rerunning skips records that are already stored.`,
	Run: func(_ *cobra.Command, _ []string) {
		runSync()
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

// runSync is the whole pipeline: fetch, map, store. Strictly sequential; the
// first error aborts the run, and everything stored before it stays stored.
func runSync() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalw("Failed to load configuration", zap.Error(err))
	}

	db.InitDatabase(cfg.DatabasePath)
	logger.Log.Infow("Database initialized", zap.String("path", cfg.DatabasePath))

	client, err := moddb.NewClient(cfg)
	if err != nil {
		logger.Log.Fatalw("Failed to create ModDB client", zap.Error(err))
	}

	logger.Log.Info("Fetching mods collection...")
	mods, err := client.FetchMods(cfg.ModsCachePath())
	if err != nil {
		logger.Log.Fatalw("Failed to fetch mods collection", zap.Error(err))
	}

	logger.Log.Info("Fetching authors collection...")
	authors, err := client.FetchAuthors(cfg.AuthorsCachePath())
	if err != nil {
		logger.Log.Fatalw("Failed to fetch authors collection", zap.Error(err))
	}

	idx := buildAuthorIndex(authors)
	logger.Log.Infof("Loaded %d mods and %d authors. Storing...", len(mods), len(authors))

	var newAuthors, newMods, newTags int
	for _, raw := range mods {
		mapped, err := mapMod(raw, idx)
		if err != nil {
			logger.Log.Fatalw("Failed to map mod record", zap.Uint("modid", raw.ModID), zap.Error(err))
		}

		_, created, err := db.UpsertAuthor(db.DB, mapped.author.UserID, mapped.author.Name)
		if err != nil {
			logger.Log.Fatalw("Failed to store author", zap.Uint("userid", mapped.author.UserID), zap.Error(err))
		}
		if created {
			newAuthors++
		}

		mod, created, err := db.UpsertMod(db.DB, mapped.mod)
		if err != nil {
			logger.Log.Fatalw("Failed to store mod", zap.Uint("modid", mapped.mod.ID), zap.Error(err))
		}
		if created {
			newMods++
		}

		for _, alias := range mapped.aliases {
			if err := db.UpsertModIDStr(db.DB, alias, mod.ID); err != nil {
				logger.Log.Fatalw("Failed to store mod-id alias", zap.String("alias", alias), zap.Error(err))
			}
		}

		for _, label := range mapped.tags {
			tag, created, err := db.UpsertTag(db.DB, label)
			if err != nil {
				logger.Log.Fatalw("Failed to store tag", zap.String("tag", label), zap.Error(err))
			}
			if created {
				newTags++
			}
			if err := db.AttachTag(db.DB, &mod, tag); err != nil {
				logger.Log.Fatalw("Failed to attach tag", zap.String("tag", label), zap.Error(err))
			}
		}
	}

	logger.Log.Infof("Finished. Stored %d new mods, %d new authors, %d new tags.", newMods, newAuthors, newTags)
}
