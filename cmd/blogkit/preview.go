package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-blogkit/internal/commands"
	previewcmd "github.com/goliatone/go-blogkit/internal/commands/preview"
	"github.com/goliatone/go-blogkit/internal/logging"
)

func newPreviewCmd(root *rootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Render a markdown post to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := previewcmd.NewRenderPreviewHandler(
				root.module.MarkdownService(),
				root.stdout,
				logging.PreviewLogger(root.module.Provider),
				commands.WithLogger[previewcmd.RenderPreviewCommand](commands.CommandLogger(root.module.Provider, "preview")),
			)
			return handler.Execute(cmd.Context(), previewcmd.RenderPreviewCommand{
				Path: args[0],
				Raw:  raw || !root.module.Config.Preview.Sanitize,
			})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "skip HTML sanitizing")
	return cmd
}
