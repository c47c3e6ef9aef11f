package widgets

import (
	"github.com/go-drift/drift-lottie/pkg/core"
	"github.com/go-drift/drift-lottie/pkg/errors"
)

// ErrorBoundary contains panics raised while its subtree mounts or updates,
// such as the *errors.ConfigError a misconfigured [Lottie] raises. The failed
// subtree is unmounted, which releases any player it held, and the fallback
// is shown instead.
//
// Example:
//
//	widgets.ErrorBoundary{
//	    OnError: func(err *errors.PanicError) {
//	        logging.L().Error("animation failed", zap.Error(err))
//	    },
//	    ChildWidget: widgets.Lottie{Engine: engine, Config: cfg},
//	}
type ErrorBoundary struct {
	// ChildWidget is the widget tree to wrap with error handling.
	ChildWidget core.Widget
	// FallbackBuilder creates a widget to show when an error is caught.
	// If nil, an empty SurfaceView is shown.
	FallbackBuilder func(err *errors.PanicError) core.Widget
	// OnError is called when an error is caught.
	OnError func(err *errors.PanicError)
	// WidgetKey is an optional key for the widget. Changing the key forces
	// the ErrorBoundary to recreate its state, clearing any captured error.
	WidgetKey any
}

func (e ErrorBoundary) CreateElement() core.Element {
	return core.NewStatefulElement(e, nil)
}

func (e ErrorBoundary) Key() any {
	return e.WidgetKey
}

func (e ErrorBoundary) CreateState() core.State {
	return &ErrorBoundaryState{}
}

// ErrorBoundaryState is the state of an ErrorBoundary.
type ErrorBoundaryState struct {
	core.StateBase
	captured *errors.PanicError
}

var _ core.ErrorCapturer = (*ErrorBoundaryState)(nil)

func (s *ErrorBoundaryState) Build(ctx core.BuildContext) core.Widget {
	widget := ctx.Widget().(ErrorBoundary)
	if s.captured != nil {
		if widget.FallbackBuilder != nil {
			return widget.FallbackBuilder(s.captured)
		}
		return SurfaceView{}
	}
	return widget.ChildWidget
}

// CaptureError records err and notifies OnError.
func (s *ErrorBoundaryState) CaptureError(err *errors.PanicError) {
	s.captured = err
	if widget, ok := s.Element().Widget().(ErrorBoundary); ok && widget.OnError != nil {
		widget.OnError(err)
	}
}

// Reset clears the captured error and rebuilds the child.
func (s *ErrorBoundaryState) Reset() {
	s.SetState(func() {
		s.captured = nil
	})
}

// HasError returns true if this boundary has captured an error.
func (s *ErrorBoundaryState) HasError() bool {
	return s.captured != nil
}

// Error returns the captured error, or nil if none.
func (s *ErrorBoundaryState) Error() *errors.PanicError {
	return s.captured
}
