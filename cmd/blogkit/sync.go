package main

import (
	"fmt"
	"time"

	command "github.com/goliatone/go-command"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-blogkit/internal/commands"
	synccmd "github.com/goliatone/go-blogkit/internal/commands/sync"
	"github.com/goliatone/go-blogkit/internal/logging"
	"github.com/goliatone/go-blogkit/internal/notionsync"
)

var syncSourceFactory synccmd.SourceFactory = synccmd.NotionSourceFactory

func newSyncCmd(root *rootOptions) *cobra.Command {
	var postDir string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Mirror published Notion pages into the post directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.module.Config
			if postDir != "" {
				cfg.Sync.PostDir = postDir
			}
			if err := cfg.ValidateSync(); err != nil {
				return err
			}

			msg := synccmd.SyncPostsCommand{
				Token:      cfg.Sync.Token,
				DatabaseID: cfg.Sync.DatabaseID,
				PostDir:    cfg.Sync.PostDir,
				PageSize:   cfg.Sync.PageSize,
			}

			var result *notionsync.Result
			handler := synccmd.NewSyncPostsHandler(syncSourceFactory, synccmd.Options{
				DefaultLang: cfg.DefaultLocale,
				Languages:   cfg.Locales,
				Now:         time.Now,
				OnResult: func(r *notionsync.Result) {
					result = r
				},
				Schedule:  command.HandlerConfig{Expression: cfg.Sync.Schedule},
				Scheduled: msg,
			}, logging.SyncLogger(root.module.Provider),
				commands.WithLogger[synccmd.SyncPostsCommand](commands.CommandLogger(root.module.Provider, "sync")),
			)

			err := handler.Execute(cmd.Context(), msg)
			if result == nil && err != nil {
				return err
			}

			generated := 0
			if result != nil {
				generated = result.Processed
			}
			fmt.Fprintf(root.stdout, "Sync complete! Generated %d posts.\n", generated)
			return err
		},
	}

	cmd.Flags().StringVar(&postDir, "post-dir", "", "override the post directory written by the sync")
	return cmd
}
