package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/s4/internal/errors"
	"github.com/VoxDroid/s4/internal/install"
	"github.com/VoxDroid/s4/internal/nameutil"
)

var installCmd = &cobra.Command{
	Use:   "install --type TYPE --for REGISTRY [--name NAME] PROGRAM",
	Short: "Install a program into the CLI or SendTo registry",
	Long: `Install a program into a registry.

Types:
  copy  copy the program (fails if the destination exists)
  lnk   create a shortcut to the program
  sym   create a symbolic link to the program
  pwsh  create a shortcut that runs the program with pwsh -NoProfile

Examples:
  s4 install --type copy --for sendto --name quickrun C:\tools\run.exe
  s4 install --type pwsh --for cli C:\tools\build.ps1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typeFlag, _ := cmd.Flags().GetString("type")
		forFlag, _ := cmd.Flags().GetString("for")
		name, _ := cmd.Flags().GetString("name")

		typ, err := install.ParseType(typeFlag)
		if err != nil {
			return err
		}
		reg, err := install.ParseRegistry(forFlag)
		if err != nil {
			return err
		}
		if name != "" {
			clean, changed := nameutil.SanitizeName(name)
			if changed {
				if clean == "" {
					return errors.New(errors.ErrInvalidInput, "--name is empty after removing invisible characters")
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "note: name sanitized to %q\n", clean)
			}
			name = clean
		}

		in, closeJournal := newInstaller()
		defer closeJournal()

		res, err := in.Install(install.Request{Type: typ, Registry: reg, Name: name, Source: args[0]})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "installed %s -> %s\n", res.Source, res.Destination)
		return nil
	},
}

func init() {
	installCmd.Flags().StringP("type", "t", "", "Install type: copy, lnk, sym or pwsh")
	installCmd.Flags().StringP("for", "f", "", "Target registry: cli or sendto")
	installCmd.Flags().StringP("name", "n", "", "Entry name (defaults to the program's file name)")
	_ = installCmd.MarkFlagRequired("type")
	_ = installCmd.MarkFlagRequired("for")
	rootCmd.AddCommand(installCmd)
}
