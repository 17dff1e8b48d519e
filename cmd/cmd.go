package cmd

import (
	"fmt"

	"github.com/kastheco/matiz/config"
	"github.com/kastheco/matiz/log"
	"github.com/kastheco/matiz/resolver"
	"github.com/spf13/cobra"
)

// options are the flags shared by every subcommand.
type options struct {
	configDir string
}

// NewRootCmd returns the root cobra command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "matiz",
		Short:         "matiz - resolve free-text color descriptions to hex",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "configuration directory (default $XDG_CONFIG_HOME/matiz)")

	root.AddCommand(NewResolveCmd(opts))
	root.AddCommand(NewColorsCmd(opts))
	root.AddCommand(NewAliasCmd(opts))
	root.AddCommand(NewServeCmd(opts))
	return root
}

func (o *options) dir() (string, error) {
	if o.configDir != "" {
		return o.configDir, nil
	}
	return config.Dir()
}

func (o *options) load() (*config.Config, error) {
	dir, err := o.dir()
	if err != nil {
		return nil, err
	}
	return config.Load(dir)
}

// loadResolver builds a resolver over the built-in dictionary plus the
// user's alias file.
func loadResolver(cfg *config.Config) (*resolver.Resolver, error) {
	store := config.NewAliasStore(cfg.Aliases.File)
	if err := store.Load(); err != nil {
		log.ErrorLog.Printf("load aliases: %v", err)
		return nil, err
	}
	r, err := resolver.New(store.Entries()...)
	if err != nil {
		return nil, fmt.Errorf("aliases in %s: %w", store.Path(), err)
	}
	return r, nil
}
