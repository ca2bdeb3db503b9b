package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/s4/internal/errors"
	"github.com/VoxDroid/s4/internal/install"
	"github.com/VoxDroid/s4/internal/utils"
)

// Replaced in tests.
var (
	isInteractive           = utils.IsInteractive
	promptInput   io.Reader = os.Stdin
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall --from REGISTRY [--yes] NAME",
	Short: "Remove an installed entry (and its .lnk twin) from a registry",
	Long: `Remove an installed entry from a registry. NAME is the entry as shown by
's4 list'. A shortcut named NAME.lnk is removed as well, and so is the
shortcut a lnk or pwsh install of NAME produced (build.ps1 removes build.lnk).
Removing an entry that does not exist is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fromFlag, _ := cmd.Flags().GetString("from")
		yes, _ := cmd.Flags().GetBool("yes")
		name := args[0]

		reg, err := install.ParseRegistry(fromFlag)
		if err != nil {
			return err
		}

		in, closeJournal := newInstaller()
		defer closeJournal()

		if !yes {
			if !isInteractive() {
				return errors.New(errors.ErrInvalidInput, "confirmation requires an interactive terminal; re-run with --yes")
			}
			dir, err := in.Dir(reg)
			if err != nil {
				return err
			}
			msg := fmt.Sprintf("Remove %q from %s?", name, dir)
			if !utils.ConfirmReader(cmd.OutOrStdout(), promptInput, msg) {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted by user (use --yes to skip confirmation)")
				return nil
			}
		}

		res, err := in.Uninstall(reg, name)
		if err != nil {
			return err
		}
		if len(res.Removed) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "nothing to remove for %s in %s\n", name, reg)
			return nil
		}
		for _, p := range res.Removed {
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", p)
		}
		return nil
	},
}

func init() {
	uninstallCmd.Flags().String("from", "", "Registry to remove from: cli or sendto")
	uninstallCmd.Flags().BoolP("yes", "y", false, "Assume yes for prompts")
	_ = uninstallCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(uninstallCmd)
}
