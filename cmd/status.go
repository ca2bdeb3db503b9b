package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/VoxDroid/s4/internal/config"
	"github.com/VoxDroid/s4/internal/install"
)

var (
	statusTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusKey   = lipgloss.NewStyle().Width(14).PaddingLeft(2).Foreground(lipgloss.Color("8"))
	statusGood  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusBad   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show registry directories, PATH membership and the PowerShell interpreter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		in, closeJournal := newInstaller()
		defer closeJournal()

		fmt.Fprint(cmd.OutOrStdout(), renderStatus(in.GetStatus()))
		return nil
	},
}

func renderStatus(st *install.Status) string {
	var b strings.Builder
	row := func(key, value string) {
		b.WriteString(statusKey.Render(key) + value + "\n")
	}
	yesNo := func(ok bool) string {
		if ok {
			return statusGood.Render("yes")
		}
		return statusBad.Render("no")
	}

	for _, rs := range st.Registries {
		b.WriteString(statusTitle.Render(rs.Registry.String()) + "\n")
		if rs.Dir == "" {
			row("directory", statusBad.Render(fmt.Sprintf("unavailable: %v", rs.Err)))
			continue
		}
		row("directory", rs.Dir)
		row("exists", yesNo(rs.Exists))
		if rs.Registry == install.Cli {
			onPath := yesNo(rs.OnPath)
			if !rs.OnPath {
				onPath += "  " + install.PathHint(rs.Dir)
			}
			row("on PATH", onPath)
		}
		if rs.Err != nil {
			row("entries", statusBad.Render(rs.Err.Error()))
		} else {
			row("entries", strconv.Itoa(rs.Entries))
		}
	}

	b.WriteString(statusTitle.Render("powershell") + "\n")
	if st.InterpreterFound {
		row("interpreter", statusGood.Render(st.InterpreterPath))
	} else {
		row("interpreter", statusBad.Render(st.Interpreter+" not found (pwsh installs will fail)"))
	}

	b.WriteString(statusTitle.Render("s4") + "\n")
	cfgState := cfgPath
	if _, err := os.Stat(cfgPath); err != nil {
		cfgState += " (not found, using defaults)"
	}
	row("config", cfgState)
	if !cfg.JournalEnabled() {
		row("journal", "disabled")
	} else if p, err := config.DBPath(); err == nil {
		row("journal", p)
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
