package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/s4/internal/install"
	"github.com/VoxDroid/s4/internal/journal"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded installs and uninstalls, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		inFlag, _ := cmd.Flags().GetString("in")
		name, _ := cmd.Flags().GetString("name")
		limit, _ := cmd.Flags().GetInt("limit")

		f := journal.Filter{Name: name, Limit: limit}
		if inFlag != "" {
			reg, err := install.ParseRegistry(inFlag)
			if err != nil {
				return err
			}
			f.Registry = reg.String()
		}

		repo, err := openJournal()
		if err != nil {
			return err
		}
		defer func() { _ = repo.Close() }()

		events, err := repo.List(f)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no recorded activity")
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, e := range events {
			typ := e.Type
			if typ == "" {
				typ = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				e.CreatedAt.Local().Format(time.DateTime), e.Action, e.Registry, typ, e.Name, e.Destination)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().String("in", "", "Only show this registry: cli or sendto")
	historyCmd.Flags().String("name", "", "Only show entries with this name")
	historyCmd.Flags().Int("limit", 20, "Maximum number of events to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
