package webui

import (
	"context"

	"github.com/riskibarqy/football-pulse/internal/platform/logging"
)

// Phase is the lifecycle state of one piece of page data.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseReady   Phase = "ready"
)

// View carries page data together with its phase. Error is set only in PhaseError
// and Data is only meaningful in PhaseReady.
type View[T any] struct {
	Phase Phase
	Data  T
	Error string
}

func Loading[T any]() View[T] {
	return View[T]{Phase: PhaseLoading}
}

func Ready[T any](data T) View[T] {
	return View[T]{Phase: PhaseReady, Data: data}
}

func Failed[T any](message string) View[T] {
	return View[T]{Phase: PhaseError, Error: message}
}

func (v View[T]) IsLoading() bool { return v.Phase == PhaseLoading }
func (v View[T]) IsError() bool   { return v.Phase == PhaseError }
func (v View[T]) IsReady() bool   { return v.Phase == PhaseReady }

// FailureMessage is the only error text users see; causes go to the log.
func FailureMessage(resource string) string {
	return "Failed to load " + resource + ". Please try again later."
}

// load runs one fetch and folds the outcome into a View.
func load[T any](
	ctx context.Context,
	logger *logging.Logger,
	page, resource string,
	fetch func(context.Context) (T, error),
	logArgs ...any,
) View[T] {
	data, err := fetch(ctx)
	if err != nil {
		args := append([]any{"page", page, "resource", resource}, logArgs...)
		args = append(args, "error", err)
		logger.WarnContext(ctx, "load page data failed", args...)
		return Failed[T](FailureMessage(resource))
	}
	return Ready(data)
}
