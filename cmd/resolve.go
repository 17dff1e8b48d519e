package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kastheco/matiz/resolver"
	"github.com/kastheco/matiz/server"
	"github.com/kastheco/matiz/ui"
	"github.com/spf13/cobra"
)

// NewResolveCmd returns the `matiz resolve` cobra command.
func NewResolveCmd(opts *options) *cobra.Command {
	var (
		details  bool
		noSwatch bool
		remote   string
	)

	cmd := &cobra.Command{
		Use:   "resolve [description...]",
		Short: "resolve a color description to hex",
		Long: "Resolve a free-text color description such as \"verde água claro\" to a hex color.\n" +
			"All arguments form one description. With no arguments, every line of stdin is resolved.",
		RunE: func(cmd *cobra.Command, args []string) error {
			texts, err := descriptions(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var results []resolver.Resolution
			if remote != "" {
				results, err = server.NewClient(remote).ResolveBatch(texts)
				if err != nil {
					return err
				}
			} else {
				cfg, err := opts.load()
				if err != nil {
					return err
				}
				r, err := loadResolver(cfg)
				if err != nil {
					return err
				}
				for _, text := range texts {
					results = append(results, r.Explain(text))
				}
			}

			out := cmd.OutOrStdout()
			for _, res := range results {
				fmt.Fprintln(out, ui.ResolutionLine(res, !noSwatch))
				if details {
					fmt.Fprintln(out, ui.ResolutionDetails(res))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&details, "details", false, "explain how each description was resolved")
	cmd.Flags().BoolVar(&noSwatch, "no-swatch", false, "print plain hex without a color block")
	cmd.Flags().StringVar(&remote, "remote", "", "resolve through a matiz server at this URL")

	return cmd
}

func descriptions(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	var texts []string
	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			texts = append(texts, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return texts, nil
}
