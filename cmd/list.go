package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/VoxDroid/s4/internal/install"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed programs",
	Long:  "List installed programs per registry. Example:\n  s4 list --in sendto --long",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		inFlag, _ := cmd.Flags().GetString("in")
		long, _ := cmd.Flags().GetBool("long")

		regs := install.Registries()
		if inFlag != "" {
			reg, err := install.ParseRegistry(inFlag)
			if err != nil {
				return err
			}
			regs = []install.Registry{reg}
		}

		in, closeJournal := newInstaller()
		defer closeJournal()

		out := cmd.OutOrStdout()
		heading := color.New(color.FgCyan, color.Bold)
		dim := color.New(color.Faint)
		for _, reg := range regs {
			dir, err := in.Dir(reg)
			if err != nil {
				return err
			}
			entries, err := in.List(reg)
			if err != nil {
				return err
			}
			_, _ = heading.Fprintf(out, "%s", reg)
			_, _ = dim.Fprintf(out, " (%s)\n", dir)
			if len(entries) == 0 {
				fmt.Fprintln(out, "  (none)")
				continue
			}
			for _, e := range entries {
				if long && e.Target != "" {
					fmt.Fprintf(out, "  %s -> %s\n", e.Name, e.Target)
				} else {
					fmt.Fprintf(out, "  %s\n", e.Name)
				}
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().String("in", "", "Only list this registry: cli or sendto")
	listCmd.Flags().BoolP("long", "l", false, "Show link and shortcut targets")
	rootCmd.AddCommand(listCmd)
}
