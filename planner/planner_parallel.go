package planner

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	csvsplit "github.com/go-csvsplit/csvsplit"
	"github.com/go-csvsplit/csvsplit/internal/util"
)

// PlanParallel plans every file enumerated by source concurrently, at most
// MaxParallelFiles at a time. Each file is planned by its own independent
// sequential pass with its own stream handle, so no state is shared between
// passes. The returned Splits are grouped by file, in enumeration order. Any
// failure aborts the whole run, once in-flight passes have finished.
func (p *Planner) PlanParallel(ctx context.Context, source csvsplit.DataSource) ([]csvsplit.Split, error) {
	fm, err := source.Analyze()
	if err != nil {
		return nil, err
	}
	var files []csvsplit.File
	for fm.HasNext() {
		files = append(files, fm.Next())
	}
	results := make([][]csvsplit.Split, len(files))
	var wg sync.WaitGroup
	asyncErrors := util.CreateAsyncErrorChannel(len(files))
	limit := semaphore.NewWeighted(p.conf.MaxParallelFiles)
	wg.Add(len(files))
	for i := range files {
		go func(i int) {
			defer wg.Done()
			if err := limit.Acquire(ctx, 1); err != nil {
				asyncErrors <- err
				return
			}
			defer limit.Release(1)
			// Acquire succeeds without consulting ctx when the semaphore has
			// room, so re-check before starting a planning pass
			if err := ctx.Err(); err != nil {
				asyncErrors <- err
				return
			}
			fileSplits, err := p.PlanFile(files[i])
			if err != nil {
				asyncErrors <- err
				return
			}
			results[i] = fileSplits
		}(i)
	}
	if err = util.WaitAndFetchError(&wg, asyncErrors); err != nil {
		return nil, err
	}
	var splits []csvsplit.Split
	for _, fileSplits := range results {
		splits = append(splits, fileSplits...)
	}
	return splits, nil
}
