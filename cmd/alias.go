package cmd

import (
	"fmt"

	"github.com/kastheco/matiz/config"
	"github.com/kastheco/matiz/log"
	"github.com/kastheco/matiz/resolver"
	"github.com/spf13/cobra"
)

// NewAliasCmd returns the `matiz alias` command group.
func NewAliasCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "manage custom color names",
	}
	cmd.AddCommand(newAliasAddCmd(opts))
	cmd.AddCommand(newAliasListCmd(opts))
	return cmd
}

func newAliasAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <hex> [keyword...]",
		Short: "add or replace a custom color",
		Long:  "Add a custom color. The name is always a keyword; extra keywords are aliases.\nCustom colors take precedence over built-in ones with the same keyword.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			store := config.NewAliasStore(cfg.Aliases.File)
			if err := store.Load(); err != nil {
				return err
			}

			entry := resolver.ColorEntry{Name: args[0], Hex: args[1], Keywords: args[2:]}
			store.Remember(entry)

			// Validate the whole set before writing it.
			if _, err := resolver.New(store.Entries()...); err != nil {
				return err
			}
			if err := store.Save(); err != nil {
				log.ErrorLog.Printf("save aliases: %v", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s) to %s\n", entry.Name, entry.Hex, store.Path())
			return nil
		},
	}
}

func newAliasListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list custom colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			store := config.NewAliasStore(cfg.Aliases.File)
			if err := store.Load(); err != nil {
				return err
			}
			for _, e := range store.Entries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %v\n", e.Hex, e.Name, e.Keywords)
			}
			return nil
		},
	}
}
