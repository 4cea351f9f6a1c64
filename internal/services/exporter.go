package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"skillpath/career-advisor/internal/apperr"
)

// PDFExporter converts rendered HTML into PDF bytes.
type PDFExporter interface {
	Export(ctx context.Context, html string) ([]byte, error)
}

// chromePDFExporter drives a headless browser subprocess. The binary is
// resolved from PATH, or from the configured exec path when set.
type chromePDFExporter struct {
	execPath string
}

func NewChromePDFExporter(execPath string) PDFExporter {
	return &chromePDFExporter{execPath: execPath}
}

// Export implements PDFExporter.
func (e *chromePDFExporter) Export(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.execPath != "" {
		opts = append(opts, chromedp.ExecPath(e.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, 60*time.Second)
	defer cancelRun()

	// The document is served from a temp file so relative URLs resolve to
	// nothing instead of the working directory.
	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrRendererUnavailable, err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrRendererUnavailable, err)
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		if isBrowserMissing(err) {
			return nil, fmt.Errorf("%w: browser executable not found; install Chrome or set CHROME_PATH", apperr.ErrRendererUnavailable)
		}
		return nil, fmt.Errorf("%w: %v", apperr.ErrRendererUnavailable, err)
	}

	return pdfBuf, nil
}

// isBrowserMissing distinguishes "engine not found on this machine" from
// other engine-reported errors.
func isBrowserMissing(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "executable file not found") ||
		strings.Contains(msg, "no such file or directory")
}
