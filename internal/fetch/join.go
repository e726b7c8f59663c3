package fetch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Join issues the given steps together and waits for all of them. The first
// error wins and cancels the shared context; siblings already in flight run
// to completion against the cancelled context and their results are
// discarded by the caller. All-or-nothing: there is no partial success.
func Join(ctx context.Context, steps ...func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, step := range steps {
		g.Go(func() error {
			return step(ctx)
		})
	}
	return g.Wait()
}
