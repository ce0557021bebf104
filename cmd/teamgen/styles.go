package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fll-tools/teamgen/pkg/render"
	"github.com/fll-tools/teamgen/pkg/toast"
	"github.com/fll-tools/teamgen/pkg/vdom"
)

func stylesCmd(a *app) *cobra.Command {
	var element bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Print the notification stylesheet",
		Long:  `Print the CSS injected with the first notification, built from the toast config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Toast.ToastConfig()
			css := toast.Stylesheet(cfg)
			if element {
				css = render.OuterHTML(vdom.Style(vdom.ID(cfg.StyleID), css))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), css)
			return err
		},
	}

	cmd.Flags().BoolVar(&element, "element", false, "Wrap the CSS in its <style> element")

	return cmd
}
