package previewcmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-blogkit/internal/commands"
	"github.com/goliatone/go-blogkit/internal/markdown"
	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

const renderOperation = "preview.render"

// CodeFileNotFound tags previews of a missing file.
const CodeFileNotFound = "PREVIEW_FILE_NOT_FOUND"

var _ command.Commander[RenderPreviewCommand] = (*RenderPreviewHandler)(nil)

// RenderPreviewHandler writes the HTML of a post to an output stream.
type RenderPreviewHandler struct {
	inner *commands.Handler[RenderPreviewCommand]
}

// NewRenderPreviewHandler binds the handler to a markdown service and out.
func NewRenderPreviewHandler(service *markdown.Service, out io.Writer, logger interfaces.Logger, opts ...commands.HandlerOption[RenderPreviewCommand]) *RenderPreviewHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg RenderPreviewCommand) error {
		preview, err := service.PreviewFile(ctx, msg.Path, interfaces.ParseOptions{Sanitize: !msg.Raw})
		if err != nil {
			return err
		}
		baseLogger.Debug("preview.command.rendered", "path", msg.Path, "title", preview.FrontMatter.Title, "bytes", len(preview.HTML))
		if _, err := fmt.Fprintf(out, "%s\n", preview.HTML); err != nil {
			return fmt.Errorf("preview: write output: %w", err)
		}
		return nil
	}

	base := []commands.HandlerOption[RenderPreviewCommand]{
		commands.WithLogger[RenderPreviewCommand](baseLogger),
		commands.WithOperation[RenderPreviewCommand](renderOperation),
		commands.WithMessageFields[RenderPreviewCommand](func(msg RenderPreviewCommand) map[string]any {
			return map[string]any{"path": msg.Path}
		}),
		commands.WithErrorCodes[RenderPreviewCommand](commands.ErrorCode{Target: fs.ErrNotExist, Code: CodeFileNotFound}),
	}

	return &RenderPreviewHandler{
		inner: commands.NewHandler(exec, append(base, opts...)...),
	}
}

// Execute satisfies command.Commander[RenderPreviewCommand].
func (h *RenderPreviewHandler) Execute(ctx context.Context, msg RenderPreviewCommand) error {
	return h.inner.Execute(ctx, msg)
}
