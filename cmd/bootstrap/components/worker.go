package components

import (
	"context"

	"barberpro/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewReactivationWorker,
	),
	fx.Invoke(startReactivationWorker),
)

func startReactivationWorker(lc fx.Lifecycle, w *worker.ReactivationWorker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return w.Start()
		},
		OnStop: func(_ context.Context) error {
			w.Stop()
			return nil
		},
	})
}
