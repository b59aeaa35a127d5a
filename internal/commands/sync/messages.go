package synccmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const syncPostsMessageType = "blogkit.sync.posts"

// SyncPostsCommand mirrors a Notion database into a post directory.
type SyncPostsCommand struct {
	// Token authenticates against the Notion API. It is never logged.
	Token string `json:"-"`
	// DatabaseID selects the database whose pages become posts.
	DatabaseID string `json:"database_id"`
	// PostDir is the collection directory the files are written to.
	PostDir string `json:"post_dir"`
	// PageSize bounds each API listing request (1-100).
	PageSize int `json:"page_size,omitempty"`
}

// Type implements command.Message.
func (SyncPostsCommand) Type() string { return syncPostsMessageType }

// Validate rejects a run that lacks credentials or a destination before any
// network call is made.
func (cmd SyncPostsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Token, validation.By(notBlank("blogkit.sync.token_required", "NOTION_TOKEN is required"))),
		validation.Field(&cmd.DatabaseID, validation.By(notBlank("blogkit.sync.database_id_required", "NOTION_DATABASE_ID is required"))),
		validation.Field(&cmd.PostDir, validation.By(notBlank("blogkit.sync.post_dir_required", "post directory is required"))),
		validation.Field(&cmd.PageSize, validation.Min(0), validation.Max(100)),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if s, _ := value.(string); strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
