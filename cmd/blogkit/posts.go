package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-blogkit/internal/posts"
)

func newPostsCmd(root *rootOptions) *cobra.Command {
	var (
		lang       string
		drafts     bool
		page       int
		collection string
	)

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List the local posts and their tags",
		Long: `List the local posts newest first, followed by tag counts.
--collection notes lists the notes collection instead.

With --page the paginated index of a locale is printed instead, including
its pinned posts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := root.module.Collection(collection)
			if err != nil {
				return err
			}
			all, err := repo.All(cmd.Context(), lang, drafts)
			if err != nil {
				return err
			}

			if page > 0 {
				return printIndexPage(root, all, lang, page)
			}

			posts.SortByDate(all)
			if err := printPosts(root.stdout, all); err != nil {
				return err
			}

			counts := posts.UniqueTagsWithCount(all)
			if len(counts) == 0 {
				return nil
			}
			fmt.Fprintln(root.stdout)
			fmt.Fprintln(root.stdout, "Tags:")
			for _, tc := range counts {
				fmt.Fprintf(root.stdout, "  %s (%d)\n", tc.Tag, tc.Count)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "only list posts written in this locale")
	cmd.Flags().BoolVar(&drafts, "drafts", false, "include draft posts")
	cmd.Flags().IntVar(&page, "page", 0, "print this page of the paginated index")
	cmd.Flags().StringVar(&collection, "collection", "posts", "collection to list: posts or notes")
	return cmd
}

func printIndexPage(root *rootOptions, all []posts.Post, lang string, number int) error {
	defaultLang := root.module.Config.DefaultLocale
	if lang == "" {
		lang = defaultLang
	}

	listing := posts.Paginate(all, lang, defaultLang)
	if listing.RedirectToDefault {
		fmt.Fprintf(root.stdout, "No posts in %s; the index redirects to %s.\n", lang, defaultLang)
		return nil
	}
	if number > len(listing.Pages) {
		return fmt.Errorf("posts: page %d out of range (1-%d)", number, len(listing.Pages))
	}

	current := listing.Pages[number-1]
	fmt.Fprintf(root.stdout, "Page %d of %d (%d posts)\n", current.Number, current.Last, current.Total)
	if number == 1 && len(listing.Pinned) > 0 {
		fmt.Fprintln(root.stdout, "Pinned:")
		if err := printPosts(root.stdout, listing.Pinned); err != nil {
			return err
		}
		fmt.Fprintln(root.stdout)
	}
	return printPosts(root.stdout, current.Posts)
}

func printPosts(out io.Writer, list []posts.Post) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, post := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\n", post.FrontMatter.PublishDate, post.ID, post.FrontMatter.Title)
	}
	return w.Flush()
}
