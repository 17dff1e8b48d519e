package cmd

import (
	"fmt"
	"strings"

	"github.com/kastheco/matiz/server"
	"github.com/kastheco/matiz/ui"
	"github.com/spf13/cobra"
)

// NewColorsCmd returns the `matiz colors` cobra command.
func NewColorsCmd(opts *options) *cobra.Command {
	var (
		filter   string
		noSwatch bool
	)

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "list known colors and their keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			r, err := loadResolver(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range server.FilterEntries(r.Entries(), filter) {
				hex := e.Hex
				if !noSwatch {
					hex = ui.Swatch(e.Hex, e.Hex)
				}
				fmt.Fprintf(out, "%s  %s: %s\n", hex, e.Name, strings.Join(e.Keywords, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "only show colors whose name or keyword contains this text")
	cmd.Flags().BoolVar(&noSwatch, "no-swatch", false, "print plain hex without a color block")

	return cmd
}
