package renderer

import "context"

const (
	// MarkdownFile is the digest written into the input directory.
	MarkdownFile = "summary.md"
)

// Renderer turns a summary file into the meeting digest.
type Renderer interface {
	// Render writes the markdown digest to outFile plus every enabled export next to it,
	// and returns the paths written.
	Render(ctx context.Context, summaryFile, outFile string) ([]string, error)
}
