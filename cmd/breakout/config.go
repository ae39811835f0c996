package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	flagConfigWrite bool
	flagConfigForce bool
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print or install a game's default config",
	Long: `Prints the built-in YAML config of a game (default: breakout).

With --write the file is copied to ~/.breakout/configs/<game>.yaml, or to
the --config path when one is given, where it overrides the built-in
values on the next start.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameID := "breakout"
		if len(args) == 1 {
			gameID = args[0]
		}
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game %q, run 'breakout list'", gameID)
		}

		if !flagConfigWrite {
			_, err := cmd.OutOrStdout().Write(config.DefaultYAML(gameID))
			return err
		}

		path := flagConfig
		if path == "" {
			path = config.UserConfigPath(gameID + ".yaml")
		}
		if err := config.WriteDefault(gameID, path, flagConfigForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Install the config file instead of printing it")
	configCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing file with --write")
}
