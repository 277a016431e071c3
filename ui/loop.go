package ui

import (
	"context"
	"time"

	"github.com/sheikhrachel/go-life/model"
)

// Loop drives life until it is done, rendering once per frame. Each frame it
// renders, waits frameRate, applies pending input and ticks the controller, so
// edits only ever land between complete transitions.
//
// Loop returns nil when the user quits, the generation limit is reached, or
// input is nil and the grid is stable (nothing can change any more). It returns
// ctx.Err() if ctx is cancelled and the first render error otherwise.
func Loop(ctx context.Context, life *model.Life, renderer Renderer, input InputSource, frameRate time.Duration) error {
	ctrl := NewController(life)
	reporter, _ := renderer.(ErrorReporter)

	var tick <-chan time.Time
	if frameRate > 0 {
		ticker := time.NewTicker(frameRate)
		defer ticker.Stop()
		tick = ticker.C
	}

	var events <-chan Event
	if input != nil {
		events = input.Events()
	}

	for {
		if err := renderer.Render(ctrl.Frame()); err != nil {
			return err
		}
		if ctrl.Done() || (input == nil && life.IsStable()) {
			return nil
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		drainEvents(ctrl, events, reporter)
		ctrl.Tick()
	}
}

// drainEvents applies every event already queued without blocking
func drainEvents(ctrl *Controller, events <-chan Event, reporter ErrorReporter) {
	if events == nil {
		return
	}
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := ctrl.Handle(ev); err != nil && reporter != nil {
				reporter.ReportError(err)
			}
		default:
			return
		}
	}
}
