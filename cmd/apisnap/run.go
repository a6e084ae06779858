package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/apisnap-labs/apisnap/core/apidefs"
	"github.com/apisnap-labs/apisnap/core/render"
	"github.com/apisnap-labs/apisnap/core/snapshot"
	"github.com/apisnap-labs/apisnap/core/tags"
)

// run executes the snapshot pipeline: decode the payload, collect the
// rendered symbols, classify by release channel, report the summary, and
// emit the output table. Any error aborts the run with nothing written to
// the output stream.
func run(ctx context.Context, in io.Reader, out io.Writer, logger *slog.Logger) error {
	payload, err := apidefs.DecodePayload(in)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	table, err := snapshot.Collect(render.Symbols(payload.Groups))
	if err != nil {
		return fmt.Errorf("collecting symbols: %w", err)
	}

	resolver := tags.NewResolver(payload.Features)
	output, stats := snapshot.Classify(table, resolver)

	stats.LogSummary(logger, payload.Revision)

	return snapshot.Encode(out, output)
}
