package convert

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	serr "binviz/internal/errors"

	"github.com/gabriel-vasile/mimetype"
)

// Ellipsis marks a truncated dump.
const Ellipsis = "..."

// DefaultPreviewLimit is the dump length, in characters, before truncation.
const DefaultPreviewLimit = 1000

// PreviewOptions controls how a file dump is cut for display.
type PreviewOptions struct {
	Limit int // characters kept; values < 1 mean DefaultPreviewLimit
	// AlwaysEllipsis appends the marker even when nothing was cut.
	AlwaysEllipsis bool
}

func (o PreviewOptions) limit() int {
	if o.Limit < 1 {
		return DefaultPreviewLimit
	}
	return o.Limit
}

// Preview is the display artifact for a file. It is not a lossless encoding.
type Preview struct {
	Name      string `yaml:"name,omitempty"`
	Size      int64  `yaml:"size"` // -1 when unknown
	MIME      string `yaml:"mime"`
	Dump      string `yaml:"dump"`
	Truncated bool   `yaml:"truncated"`

	// Metadata holds EXIF fields when they were requested and present.
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// IsImage reports whether the detected content type is an image type.
func (p *Preview) IsImage() bool {
	return strings.HasPrefix(p.MIME, "image/")
}

// Dump renders data as space-separated octets cut to the option's limit.
// It reports whether anything was cut.
func Dump(data []byte, opts PreviewOptions) (string, bool) {
	limit := opts.limit()

	var sb strings.Builder
	sb.Grow(min(len(data)*(OctetWidth+1), limit+len(Ellipsis)+OctetWidth+1))
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(padBinary(uint64(b)))
		if sb.Len() > limit {
			break
		}
	}

	s := sb.String()
	truncated := len(s) > limit
	if truncated {
		s = s[:limit]
	}
	if truncated || opts.AlwaysEllipsis {
		s += Ellipsis
	}
	return s, truncated
}

// sniffLen is the head size handed to content type detection.
const sniffLen = 512

// bytesNeeded is how many input bytes produce more than limit characters,
// which is enough to both fill the preview and detect truncation. It never
// drops below sniffLen.
func bytesNeeded(limit int) int64 {
	return int64(max(limit/(OctetWidth+1)+2, sniffLen))
}

// LoadFile reads the head of the file at path and renders its preview. An
// empty path means nothing was selected.
func LoadFile(ctx context.Context, path string, opts PreviewOptions) (*Preview, error) {
	if path == "" {
		return nil, serr.NewIOError(serr.MsgNoFile, "", serr.NoFileSelected, nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, serr.NewIOError(serr.MsgReadFile, path, serr.FileReadFailed, err)
	}
	defer f.Close()

	size := int64(-1)
	if info, err := f.Stat(); err == nil {
		if info.IsDir() {
			return nil, serr.NewIOError(serr.MsgReadFile, path, serr.FileReadFailed, serr.New("is a directory"))
		}
		size = info.Size()
	}

	p, err := LoadReader(ctx, f, opts)
	if err != nil {
		var ioErr *serr.IOError
		if serr.As(err, &ioErr) {
			return nil, serr.NewIOError(ioErr.Message(), path, ioErr.Kind(), ioErr.Unwrap())
		}
		return nil, err
	}
	p.Name = filepath.Base(path)
	if size >= 0 {
		p.Size = size
	}
	return p, nil
}

// LoadReader reads from r until the preview is full or r is exhausted. A nil
// reader means nothing was selected. Cancelling ctx aborts the read.
func LoadReader(ctx context.Context, r io.Reader, opts PreviewOptions) (*Preview, error) {
	if r == nil {
		return nil, serr.NewIOError(serr.MsgNoFile, "", serr.NoFileSelected, nil)
	}

	data, err := io.ReadAll(&ctxReader{ctx: ctx, r: io.LimitReader(r, bytesNeeded(opts.limit()))})
	if err != nil {
		return nil, serr.NewIOError(serr.MsgReadFile, "", serr.FileReadFailed, err)
	}

	dump, truncated := Dump(data, opts)
	size := int64(len(data))
	if truncated {
		// only the head was read
		size = -1
	}
	return &Preview{
		Size:      size,
		MIME:      mimetype.Detect(data).String(),
		Dump:      dump,
		Truncated: truncated,
	}, nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
