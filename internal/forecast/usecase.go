package forecast

import (
	"context"

	"github.com/fekuna/omnipos-juicebar-service/internal/model"
)

type UseCase interface {
	// Current returns the latest prediction set. It is replaced, never merged.
	Current(ctx context.Context) []model.Prediction
	Refresh(ctx context.Context) error
	Signal() Signal
	SetSignal(ctx context.Context, signal Signal) ([]model.Prediction, error)
}
