package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"libcatalog/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Run one render pass and write the page as HTML",
	Long: `Fetches the catalog once, renders it and writes the page to --out (or stdout).
The page is written even when the pass fails, carrying the error block; the
command then exits non-zero.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
}

func runRender(cmd *cobra.Command, args []string) error {
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	page := render.NewPage(cfg.PageTitle)
	outcome := newRenderer().Render(ctx, cfg.Source, page, page)

	if err := writePage(page, outPath, cmd.OutOrStdout()); err != nil {
		return err
	}

	if outcome.State == render.StateError {
		return outcome.Err
	}
	logger.Info("catalog rendered",
		zap.String("source", cfg.Source),
		zap.Int("rendered", outcome.Rendered),
		zap.Int("skipped", outcome.Skipped),
		zap.String("total_size", outcome.Stats.TotalSize),
	)
	return nil
}

func writePage(page *render.Page, outPath string, stdout io.Writer) error {
	if outPath == "" {
		_, err := page.WriteTo(stdout)
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	if _, err := page.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return f.Close()
}

// sourceName is the document name quoted in the error hint.
func sourceName(source string) string {
	p := source
	if u, err := url.Parse(source); err == nil && u.Scheme != "" {
		p = u.Path
	}
	name := path.Base(p)
	if name == "." || name == "/" {
		return source
	}
	return name
}
