package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/fll-tools/teamgen/internal/errors"
	"github.com/fll-tools/teamgen/pkg/page"
	"github.com/fll-tools/teamgen/pkg/toast"
)

// pageTitle is the <title> of the generator page.
const pageTitle = "FLL Team Name Generator"

type renderOptions struct {
	message  string
	category toast.Category
	after    time.Duration
	pretty   bool
}

func renderCmd(a *app) *cobra.Command {
	var (
		opts     renderOptions
		category string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the page after showing a notification",
		Long: `Load the page, call showNotification and print the resulting document.

With --after, the document is printed once that much time has passed, so a
value at or above the toast duration shows the hidden state.`,
		Example: `  teamgen render --message "Saved!" --category success
  teamgen render -m "Saved!" --after 3s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.category = toast.Category(category)
			if !opts.category.Valid() {
				return errors.New("E200").WithDetailf("%q", category)
			}
			if d := a.cfg.Toast.Duration.Std(); opts.after > 0 && opts.after < d {
				warn(cmd.ErrOrStderr(), "--after %s is shorter than the toast duration %s, the notification will still be shown", opts.after, d)
			}
			return renderPage(cmd.Context(), cmd.OutOrStdout(), a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.message, "message", "m", "Team name generated!", "Notification text")
	cmd.Flags().StringVar(&category, "category", string(toast.CategoryInfo), "Notification category: info, success, error")
	cmd.Flags().DurationVar(&opts.after, "after", 0, "Wait this long before printing")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", true, "Indent the document")

	return cmd
}

// renderPage hosts a page on the real clock and writes its document to w.
func renderPage(ctx context.Context, w io.Writer, a *app, opts renderOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)

	p := page.New(page.WithTitle(pageTitle), page.WithLogger(a.logger))
	reg := prometheus.NewRegistry()
	toast.Install(p, a.cfg.Toast.ToastConfig(), toast.WithMetrics(toast.NewMetrics(reg)))

	go p.Run(ctx)
	defer func() {
		cancel()
		<-p.Done()
	}()

	if err := p.Load(ctx); err != nil {
		return errors.New("E201").Wrap(err)
	}
	if _, err := p.Window.Call(ctx, toast.GlobalShow, opts.message, string(opts.category)); err != nil {
		return errors.New("E202").WithDetail(toast.GlobalShow).Wrap(err)
	}

	if opts.after > 0 {
		a.logger.Debug("waiting before render", "after", opts.after)
		select {
		case <-time.After(opts.after):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	var (
		html      string
		renderErr error
	)
	if err := p.Do(ctx, func() {
		html, renderErr = p.Document.HTML(opts.pretty)
	}); err != nil {
		return errors.New("E201").Wrap(err)
	}
	if renderErr != nil {
		return renderErr
	}

	logMetrics(a.logger, reg)

	_, err := io.WriteString(w, html)
	return err
}

// logMetrics writes every gathered counter to the debug log.
func logMetrics(logger *slog.Logger, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		logger.Warn("gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"metric", mf.GetName(), "value", m.GetCounter().GetValue()}
			for _, label := range m.GetLabel() {
				attrs = append(attrs, label.GetName(), label.GetValue())
			}
			logger.Debug("metric", attrs...)
		}
	}
}
