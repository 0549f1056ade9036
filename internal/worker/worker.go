package worker

import (
	"context"
)

// Worker - фоновый процесс, живущий вместе с приложением.
// Start блокируется до остановки через Stop или отмены ctx.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}
