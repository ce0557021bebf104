package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fll-tools/teamgen/pkg/toast"
)

func sanitizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sanitize <text>...",
		Short: "Escape text for insertion into the page",
		Long: `Print text escaped the way sanitizeInput escapes it. Several arguments are
joined with single spaces. Use "-" to read the text from stdin.`,
		Example: `  teamgen sanitize "<script>alert(1)</script>"
  echo "Bots & Bolts" | teamgen sanitize -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 1 && args[0] == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = strings.TrimSuffix(string(data), "\n")
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), toast.Sanitize(text))
			return err
		},
	}

	return cmd
}
