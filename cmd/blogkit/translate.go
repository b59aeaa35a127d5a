package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

func newTranslateCmd(root *rootOptions) *cobra.Command {
	var alternates bool

	cmd := &cobra.Command{
		Use:   "translate <path> <locale>",
		Short: "Translate a URL path into another locale",
		Example: `  blogkit translate /about uk
  blogkit translate /uk/dopysy/ en --alternates`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := root.module.Resolver()
			if err != nil {
				return err
			}

			fmt.Fprintln(root.stdout, resolver.TranslatePath(args[0], args[1]))
			if !alternates {
				return nil
			}

			links, err := root.module.Links(resolver)
			if err != nil {
				return err
			}
			urls := links.Alternates(args[0])
			for _, locale := range slices.Sorted(maps.Keys(urls)) {
				fmt.Fprintf(root.stdout, "%s\t%s\n", locale, urls[locale])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&alternates, "alternates", false, "also print the absolute alternate link of every locale")
	return cmd
}
