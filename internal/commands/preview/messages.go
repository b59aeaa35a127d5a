package previewcmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const renderPreviewMessageType = "blogkit.preview.render"

// RenderPreviewCommand renders a post file to HTML.
type RenderPreviewCommand struct {
	Path string `json:"path"`
	// Raw skips sanitisation of the rendered HTML.
	Raw bool `json:"raw,omitempty"`
}

// Type implements command.Message.
func (RenderPreviewCommand) Type() string { return renderPreviewMessageType }

// Validate ensures a file was named.
func (cmd RenderPreviewCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required.ErrorObject(
			validation.NewError("blogkit.preview.path_required", "path is required"),
		)),
	)
}
