package service

import (
	"context"

	"employee-directory/pkg/workerpool"
)

type AsyncService struct {
	Pool *workerpool.WorkerPool
}

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

// SubmitAsync выполняет fn в пуле и ждёт результата.
func (a *AsyncService) SubmitAsync(ctx context.Context, fn func() (any, error)) (any, error) {
	resCh := make(chan workerpool.Result, 1)
	if err := a.Pool.Submit(ctx, workerpool.Task{Fn: fn, ResultC: resCh}); err != nil {
		return nil, err
	}
	select {
	case res := <-resCh:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Go ставит fn в очередь без ожидания. false — очередь переполнена.
func (a *AsyncService) Go(fn func() error) bool {
	return a.Pool.TrySubmit(workerpool.Task{Fn: func() (any, error) {
		return nil, fn()
	}})
}
