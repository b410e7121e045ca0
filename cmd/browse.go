package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/violet4/VSModPuller/config"
	"github.com/violet4/VSModPuller/db"
	"github.com/violet4/VSModPuller/logger"
	"github.com/violet4/VSModPuller/ui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse stored mods in an interactive list",
	Long:  `Launch an interactive TUI listing the mods stored in the local database.`,
	Run: func(_ *cobra.Command, _ []string) {
		runBrowse()
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalw("Failed to load configuration", zap.Error(err))
	}
	db.InitDatabase(cfg.DatabasePath)

	p := tea.NewProgram(newBrowseModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Log.Fatalw("Error running browse TUI", zap.Error(err))
	}
}

// browseModel is the state of the browse screen.
type browseModel struct {
	spinner       spinner.Model
	mods          []db.Mod
	selectedIndex int
	loading       bool
	error         string
	width         int
	height        int
}

// Message types
type modsLoadedMsg []db.Mod

type errorMsg string

func newBrowseModel() browseModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return browseModel{
		spinner: s,
		loading: true,
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadStoredMods)
}

func loadStoredMods() tea.Msg {
	var mods []db.Mod
	err := db.DB.Preload("Author").Preload("Tags").
		Order("downloads DESC").Find(&mods).Error
	if err != nil {
		return errorMsg(err.Error())
	}
	return modsLoadedMsg(mods)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selectedIndex > 0 {
				m.selectedIndex--
			}
		case "down", "j":
			if m.selectedIndex < len(m.mods)-1 {
				m.selectedIndex++
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case modsLoadedMsg:
		m.mods = msg
		m.loading = false
	case errorMsg:
		m.error = string(msg)
		m.loading = false
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.loading {
			return m, cmd
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	if m.loading {
		return fmt.Sprintf("%s Loading mods...\n", m.spinner.View())
	}

	if m.error != "" {
		return fmt.Sprintf("Error: %s\n", m.error)
	}

	if len(m.mods) == 0 {
		return "No mods stored. Run 'vsmodpuller sync' first.\n"
	}

	var output strings.Builder
	output.WriteString(renderBrowseHeader())
	output.WriteString("\n")

	// Keep the selected row on screen
	visible := len(m.mods)
	if m.height > 4 && visible > m.height-4 {
		visible = m.height - 4
	}
	start := 0
	if m.selectedIndex >= visible {
		start = m.selectedIndex - visible + 1
	}

	for i := start; i < start+visible && i < len(m.mods); i++ {
		output.WriteString(m.renderModRow(i, m.mods[i]))
		output.WriteString("\n")
	}

	output.WriteString("\n" + renderBrowseFooter())
	return output.String()
}

func renderBrowseHeader() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Padding(0, 1)

	return headerStyle.Render(fmt.Sprintf("%-40s %-20s %-8s %10s  %s",
		"Mod Name", "Author", "Side", "Downloads", "Released"))
}

func renderBrowseFooter() string {
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Italic(true)

	return footerStyle.Render("↑/k: up  ↓/j: down  q: quit")
}

func (m browseModel) renderModRow(index int, mod db.Mod) string {
	rowStyle := lipgloss.NewStyle().Padding(0, 1)
	if index == m.selectedIndex {
		rowStyle = rowStyle.
			Background(lipgloss.Color("8")).
			Bold(true)
	}

	authorName := ""
	if mod.Author.Name != nil {
		authorName = *mod.Author.Name
	}

	side := string(mod.Side)
	// Pad the side before applying color to maintain column alignment
	paddedSide := fmt.Sprintf("%-8s", side)
	coloredSide := ui.Colorize(paddedSide, ui.SideColor(side))

	row := fmt.Sprintf("%-40s %-20s %s %10d  %s",
		truncate(mod.Name, 38),
		truncate(authorName, 18),
		coloredSide,
		mod.Downloads,
		mod.LastReleased.Format("2006-01-02"),
	)

	return rowStyle.Render(row)
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}
