package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// batchWorkers bounds concurrent analyses in a batch.
const batchWorkers = 4

// AnalyzeBatch analyzes each resume against the same job description
// concurrently. Results are index-associated with the input slice. The first
// error cancels remaining work.
func (e *Engine) AnalyzeBatch(ctx context.Context, resumes []string, jobDescription string, opts Options) ([]Report, error) {
	reports := make([]Report, len(resumes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)

	for i, resume := range resumes {
		i, resume := i, resume
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := e.Analyze(resume, jobDescription, opts)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
