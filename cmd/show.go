package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/violet4/VSModPuller/config"
	"github.com/violet4/VSModPuller/db"
	"github.com/violet4/VSModPuller/logger"
	"github.com/violet4/VSModPuller/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [author]",
	Short: "Show an author's stored mods",
	Long: `Show an author's stored mods with their versions, tags and mod-id aliases.
Example: vsmodpuller show theysa`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		showAuthor(args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func showAuthor(name string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalw("Failed to load configuration", zap.Error(err))
	}
	db.InitDatabase(cfg.DatabasePath)

	var author db.Author
	result := db.DB.Where("name = ?", name).First(&author)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Log.Warnw("Author not found in database", zap.String("author", name))
			fmt.Printf("No stored author named %q. Run 'vsmodpuller sync' first.\n", name)
			return
		}
		logger.Log.Fatalw("Failed to query database", zap.Error(result.Error))
	}

	var mods []db.Mod
	err = db.DB.Where("author_id = ?", author.ID).
		Preload("ModIDStrs").Preload("Tags").Preload("Versions").
		Order("name").Find(&mods).Error
	if err != nil {
		logger.Log.Fatalw("Failed to query mods", zap.Error(err))
	}

	fmt.Printf("%s — %d mods\n", name, len(mods))
	for _, mod := range mods {
		side := string(mod.Side)
		fmt.Printf("\n  %s  [%s/%s]  released %s\n",
			ui.Colorize(mod.Name, ui.SideColor(side)),
			side, mod.ModType,
			mod.LastReleased.Format(db.ReleaseTimeLayout),
		)
		if mod.Summary != nil && *mod.Summary != "" {
			fmt.Printf("      %s\n", *mod.Summary)
		}
		fmt.Printf("      downloads %d, follows %d, comments %d\n",
			mod.Downloads, mod.Follows, mod.CommentCount)

		if len(mod.ModIDStrs) > 0 {
			aliases := make([]string, len(mod.ModIDStrs))
			for i, alias := range mod.ModIDStrs {
				aliases[i] = alias.ModIDStr
			}
			fmt.Printf("      aliases: %s\n", strings.Join(aliases, ", "))
		}
		if len(mod.Tags) > 0 {
			labels := make([]string, len(mod.Tags))
			for i, tag := range mod.Tags {
				labels[i] = tag.Tag
			}
			fmt.Printf("      tags: %s\n", strings.Join(labels, ", "))
		}
		for _, version := range mod.Versions {
			fmt.Printf("      version %s\n", version.Version)
		}
	}
}
