package render

import (
	"context"
	"fmt"

	"github.com/retroenv/disasm86/internal/instruction"
	"golang.org/x/sync/errgroup"
)

// RenderAll returns the instruction text of all records, rendered by up to the
// given number of workers. The records have to be completely scanned as
// rendering reads their label flags.
func (r Renderer) RenderAll(ctx context.Context, records []instruction.Record, workers int) ([]string, error) {
	lines := make([]string, len(records))
	if len(records) == 0 {
		return lines, nil
	}
	workers = max(workers, 1)

	chunkSize := (len(records) + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(records); start += chunkSize {
		end := min(start+chunkSize, len(records))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("rendering records %d-%d: %w", start, end, err)
			}
			for i := start; i < end; i++ {
				lines[i] = r.Instruction(records[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}
