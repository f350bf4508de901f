// Command hlayout renders body fragments into layout files.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hlayout/events"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "hlayout",
		Short:         "Render HTML fragments into layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level (trace, debug, info, warn, error)")

	logger := func() hclog.Logger {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "hlayout",
			Level:  hclog.LevelFromString(logLevel),
			Output: cmd.ErrOrStderr(),
		})
	}

	cmd.AddCommand(newRenderCmd(logger), newEscapeCmd())
	return cmd
}

// logEvents forwards library events to the logger.
func logEvents(l hclog.Logger) events.EventHandler {
	return func(e events.Event) {
		switch e := e.(type) {
		case events.LayoutLoaded:
			l.Debug("layout loaded", "path", e.Path, "bytes", e.Size)
		case events.LayoutSplit:
			if e.Occurrences > 1 {
				l.Warn("body placeholder appears more than once, using the first",
					"path", e.Path, "marker", e.Marker, "count", e.Occurrences)
			}
		case events.PartialApplied:
			l.Trace("partial applied", "placeholder", e.Placeholder,
				"matches", e.Matches)
		case events.Composed:
			l.Debug("page composed", "layout", e.Path, "bytes", e.Size)
		case events.RenderWritten:
			if e.DidRender {
				l.Info("rendered", "path", e.Path)
			} else {
				l.Info("unchanged", "path", e.Path)
			}
		}
	}
}
