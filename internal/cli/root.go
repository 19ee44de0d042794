// Package cli implements the boxzoom command line tool.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/boxzoom"
)

// Version is the current version of the boxzoom tool.
const Version = "0.3.0"

// globalFlags holds the flags shared by every subcommand.
type globalFlags struct {
	ConfigPath string
	Debug      bool
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "boxzoom",
		Short: "Draw and resize a selection box over a zoomable image",
		Long: `boxzoom opens an image in a touch-friendly window where one box can be drawn,
resized, panned and pinch-zoomed. The committed box is written as a YAML record
that the crop command can apply to the original image.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.Debug {
				log.SetOutput(os.Stderr)
				log.SetFlags(log.Ltime | log.Lshortfile)
			} else {
				log.SetOutput(io.Discard)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&g.ConfigPath, "config", "", "YAML config file (default: built-in defaults)")
	cmd.PersistentFlags().BoolVar(&g.Debug, "debug", false, "Enable debug logging and the gesture trace")

	cmd.AddCommand(newViewCommand(g))
	cmd.AddCommand(newCropCommand())
	cmd.AddCommand(newInitConfigCommand())
	return cmd
}

// loadConfig returns the config named by --config, or the defaults. --debug
// turns on the editor's gesture trace.
func (g *globalFlags) loadConfig() (boxzoom.Config, error) {
	cfg := boxzoom.DefaultConfig()
	if g.ConfigPath != "" {
		var err error
		if cfg, err = boxzoom.LoadConfig(g.ConfigPath); err != nil {
			return cfg, err
		}
		log.Printf("loaded config %s", g.ConfigPath)
	}
	if g.Debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func newInitConfigCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config <path>",
		Short: "Write the default configuration to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
			}
			if err := boxzoom.DefaultConfig().Save(path); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
