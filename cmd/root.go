package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/VoxDroid/s4/internal/config"
	"github.com/VoxDroid/s4/internal/errors"
	"github.com/VoxDroid/s4/internal/install"
	"github.com/VoxDroid/s4/internal/journal"
	"github.com/VoxDroid/s4/internal/logging"
)

var (
	verbosity  int
	quiet      bool
	configFlag string
	logFile    string

	// Loaded by PersistentPreRunE.
	cfg     = config.Default()
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:   "s4",
	Short: "s4 installs scripts and programs into the CLI and SendTo registries",
	Long: `s4 places a script or executable where Windows can find it: the s4 scripts
directory (meant to be on PATH) or the Explorer "Send To" menu.
Programs are copied, linked with a shortcut or symlink, or wrapped in a
shortcut that runs them with PowerShell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		path := configFlag
		if path == "" {
			p, err := config.ConfigPath()
			if err != nil {
				return errors.Wrap(err, errors.ErrConfigLoad, "locate config file")
			}
			path = p
		}
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg, cfgPath = c, path

		file := logFile
		if file == "" {
			file = cfg.Log.File
		}
		logging.Setup(logging.Options{
			Verbosity: verbosity,
			Quiet:     quiet,
			LogFile:   file,
			Out:       cmd.ErrOrStderr(),
		})
		log.Debug().Str("config", cfgPath).Msg("configuration loaded")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v debug, -vv trace)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log warnings and errors")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs as JSON to this file")
}

// newInstaller builds an Installer from the loaded config. The returned func
// releases the journal and must always be called.
func newInstaller() (*install.Installer, func()) {
	env := install.DefaultEnv(cfg)
	closeJournal := func() {}
	if cfg.JournalEnabled() {
		repo, err := openJournal()
		if err != nil {
			log.Warn().Err(err).Msg("journal unavailable, continuing without it")
		} else {
			env.Journal = repo
			closeJournal = func() { _ = repo.Close() }
		}
	}
	return install.New(env), closeJournal
}

func openJournal() (*journal.Repository, error) {
	p, err := config.DBPath()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrJournal, "locate journal")
	}
	return journal.Open(p)
}

// Execute executes the root command
func Execute() {
	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "s4: %v\n", err)
		os.Exit(1)
	}
}
