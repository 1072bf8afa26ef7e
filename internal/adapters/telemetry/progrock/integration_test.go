package progrock_test

import (
	"context"
	"testing"

	"go.trai.ch/fwbom/internal/adapters/telemetry/progrock"
	"go.trai.ch/fwbom/internal/core/domain"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()

	ctx := context.Background()
	_, vertex := recorder.Record(ctx, string(domain.StageDiscover))

	vertex.Log(domain.LogLevelInfo, "3 package indexes")
	vertex.Log(domain.LogLevelDebug, "debug msg")
	vertex.Complete(nil)

	if err := recorder.Close(); err != nil {
		t.Errorf("failed to close recorder: %v", err)
	}
}

func TestRecorder_CloseTwice(t *testing.T) {
	recorder := progrock.New()
	_, vertex := recorder.Record(context.Background(), string(domain.StageLink))
	vertex.Complete(nil)

	if err := recorder.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := recorder.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}
