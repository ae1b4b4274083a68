package mocks

import (
	"context"

	"playcourt/infras/otel"
)

type otelImpl struct {
	recorder *Recorder
}

func (o *otelImpl) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	if o.recorder != nil {
		o.recorder.span(spanName)
	}

	return ctx, &scopeImpl{recorder: o.recorder}
}

func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

// NewOtel returns a tracer whose scopes record nothing.
func NewOtel() otel.Otel {
	return &otelImpl{}
}

// NewRecordingOtel returns a tracer and the recorder its scopes report to.
func NewRecordingOtel() (otel.Otel, *Recorder) {
	recorder := &Recorder{}

	return &otelImpl{recorder: recorder}, recorder
}
