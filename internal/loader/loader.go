package loader

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Options control how an import file is read
type Options struct {
	// Progress shows a progress bar on ProgressWriter for files of at least
	// ProgressThreshold bytes.
	Progress          bool
	ProgressThreshold int64
	ProgressWriter    io.Writer
}

// Read returns the contents of the import file at path, decompressing gzip
// content when present. Reading stops early if ctx is cancelled.
func Read(ctx context.Context, path string, opts Options) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	var reader io.Reader = &ctxReader{ctx: ctx, r: f}

	if opts.Progress && opts.ProgressWriter != nil && info.Size() >= opts.ProgressThreshold {
		bar := pb.New64(info.Size()).
			SetTemplate(pb.Full).
			Set(pb.Bytes, true).
			SetWriter(opts.ProgressWriter).
			Start()
		defer bar.Finish()
		reader = bar.NewProxyReader(reader)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Decompress(data)
}

// Decompress gunzips data if it starts with the gzip magic number and
// returns it unchanged otherwise.
func Decompress(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, gzipMagic) {
		return data, nil
	}

	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer reader.Close()

	out, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return out, nil
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
