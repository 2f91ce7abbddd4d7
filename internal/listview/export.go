package listview

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/aerohr/console/pkg/errors"
)

// ValidateWorkbook checks that data is a readable xlsx workbook with at least
// one sheet.
func ValidateWorkbook(data []byte) error {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not a valid workbook: %w", err)
	}
	defer f.Close()
	if len(f.GetSheetList()) == 0 {
		return fmt.Errorf("workbook has no sheets")
	}
	return nil
}

// Export downloads a spreadsheet for the current filter state (the full
// result set, not the displayed page) and saves it into dir. The file is
// written only after the whole body arrived and passed validation, and the
// write itself is atomic, so a failed export leaves nothing behind.
func (c *Controller[T]) Export(ctx context.Context, dir string) Result {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return superseded(ActionExport)
	}
	snapshot := c.state.Clone()
	reqCtx, _, release := c.track(ctx)
	c.mu.Unlock()

	data, name, err := c.fetcher.Export(reqCtx, c.resource, snapshot)
	release()
	if err != nil {
		log.Printf("⚠️ export %s: %v", c.resource, err)
		return failed(ActionExport, err)
	}
	if c.Closed() {
		return superseded(ActionExport)
	}

	if c.opts.exportValidator != nil {
		if err := c.opts.exportValidator(data); err != nil {
			return failed(ActionExport, apperrors.NewExportFailure(string(c.resource), 0, "", err))
		}
	}

	if name == "" {
		name = c.resource.ExportFilename()
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return failed(ActionExport, apperrors.NewExportFailure(string(c.resource), 0, "", fmt.Errorf("create download dir: %w", err)))
	}
	path := filepath.Join(dir, filepath.Base(name))
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return failed(ActionExport, apperrors.NewExportFailure(string(c.resource), 0, "", fmt.Errorf("save export: %w", err)))
	}

	res := ok(ActionExport, fmt.Sprintf("Exported %d bytes to %s", len(data), path))
	res.Path = path
	return res
}
