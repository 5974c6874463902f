// Package pdf turns rendered quote HTML into PDF bytes by driving a
// headless Chromium over the DevTools protocol.
package pdf

import (
	"context"

	"github.com/Arman11r/Catalog-web/pkg/config"
	"github.com/Arman11r/Catalog-web/pkg/errors"
	"github.com/Arman11r/Catalog-web/pkg/logger"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/multierr"
)

// A4 paper in inches with the quote's fixed margins.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 0.5
)

// Rasterizer produces PDF bytes from a standalone HTML document.
type Rasterizer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// ChromeRasterizer renders through a headless Chromium instance. Each call
// launches an isolated browser context so concurrent renders never share a
// tab. Failures affect only the request at hand; there is no retry.
type ChromeRasterizer struct {
	cfg  config.PDFConfig
	logg *logger.Logger
}

// NewChromeRasterizer constructs a rasterizer from PDF configuration.
func NewChromeRasterizer(cfg config.PDFConfig, logg *logger.Logger) *ChromeRasterizer {
	return &ChromeRasterizer{cfg: cfg, logg: logg}
}

// Render prints the HTML document to A4 PDF with 0.5in margins and
// backgrounds enabled. The whole render is bounded by the configured
// timeout.
func (r *ChromeRasterizer) Render(ctx context.Context, html string) (out []byte, err error) {
	execPath, err := resolveExecPath(r.cfg.ChromePath)
	if err != nil {
		return nil, errors.Wrap(errors.CodeRender, err, "locating browser executable")
	}

	if r.cfg.RenderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.RenderTimeout)
		defer cancel()
	}

	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(execPath),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer func() {
		// Cancel tears the browser down gracefully. A teardown failure
		// joins a render failure but never fails a successful render.
		if cerr := chromedp.Cancel(tabCtx); cerr != nil {
			if err != nil {
				err = multierr.Append(err, cerr)
			} else if r.logg != nil {
				r.logg.Warn(ctx, "browser teardown failed")
			}
		}
		cancelTab()
	}()

	var pdfBytes []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfBytes = buf
			return nil
		}),
	}

	if err := chromedp.Run(tabCtx, tasks); err != nil {
		if r.logg != nil {
			r.logg.Error(ctx, "pdf render failed", err)
		}
		return nil, errors.Wrap(errors.CodeRender, err, "printing document to pdf")
	}

	return pdfBytes, nil
}
