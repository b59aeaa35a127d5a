package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-blogkit/internal/i18n"
)

func newUICmd(root *rootOptions) *cobra.Command {
	var bundle string

	cmd := &cobra.Command{
		Use:   "ui <locale> [key...]",
		Short: "Print interface strings for a locale",
		Long: `Print interface strings for a locale. Missing translations fall back
to the default locale and then to the key itself. Without keys every
string of the default locale is listed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui, err := loadUI(cmd, bundle)
			if err != nil {
				return err
			}

			locale, keys := args[0], args[1:]
			if len(keys) == 0 {
				keys = ui.Keys()
			}
			t := ui.For(locale)
			for _, key := range keys {
				fmt.Fprintf(root.stdout, "%s\t%s\n", key, t(key))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bundle, "bundle", "", "JSON strings bundle to use instead of the built-in one")
	return cmd
}

func loadUI(cmd *cobra.Command, bundle string) (*i18n.UI, error) {
	if strings.TrimSpace(bundle) == "" {
		return i18n.DefaultUI()
	}
	return i18n.LoadUIFile(cmd.Context(), bundle)
}
