package mcts

import (
	"testing"
	"time"
)

func TestLimiterSingleLimits(t *testing.T) {
	limiter := NewLimiter()

	if !limiter.Ok(1000000, 1000000, 1000000) {
		t.Error("Default limiter should search infinitely")
	}

	limiter.SetLimits(DefaultLimits().SetNodes(100))
	limiter.Reset()
	if ok := limiter.Ok(101, 1, 1); ok {
		t.Errorf("<Nodes=%d: ok=%v, want=%v", 101, ok, !ok)
	}
	if ok := limiter.Ok(99, 1, 1); !ok {
		t.Errorf(">Nodes=%d: ok=%v, want=%v", 99, ok, !ok)
	}

	limiter.SetLimits(DefaultLimits().SetCycles(50))
	limiter.Reset()
	if ok := limiter.Ok(1, 1, 50); ok {
		t.Errorf("<Cycles=%d: ok=%v, want=%v", 50, ok, !ok)
	}
	if ok := limiter.Ok(1, 1, 49); !ok {
		t.Errorf(">Cycles=%d: ok=%v, want=%v", 49, ok, !ok)
	}

	limiter.SetLimits(DefaultLimits().SetDepth(8))
	limiter.Reset()
	if ok := limiter.Ok(1, 8, 1); ok {
		t.Errorf("<Depth=%d: ok=%v, want=%v", 8, ok, !ok)
	}
	if ok := limiter.Ok(1, 7, 1); !ok {
		t.Errorf(">Depth=%d: ok=%v, want=%v", 7, ok, !ok)
	}

	limiter.SetLimits(DefaultLimits().SetMovetime(100))
	limiter.Reset()
	time.Sleep(time.Millisecond * 101)
	if ok := limiter.Ok(1, 1, 1); ok {
		t.Errorf("<Movetime: ok=%v, want=%v", ok, !ok)
	}

	limiter.Reset()
	if ok := limiter.Ok(1, 1, 1); !ok {
		t.Errorf(">Movetime: ok=%v, want=%v", ok, !ok)
	}
}

func TestLimiterStop(t *testing.T) {
	limiter := NewLimiter()
	limiter.Reset()

	limiter.SetStop(true)
	if limiter.Ok(1, 1, 1) {
		t.Error("Stop signal should end an infinite search too")
	}

	limiter.EvaluateStopReason(1, 1, 1)
	if reason := limiter.StopReason(); reason&StopInterrupt != StopInterrupt {
		t.Errorf("StopReason=%v, want Interrupt", reason)
	}

	limiter.Reset()
	if !limiter.Ok(1, 1, 1) {
		t.Error("Reset should clear the stop signal")
	}
}

func TestLimiterStopReason(t *testing.T) {
	limiter := NewLimiter()
	limiter.SetLimits(DefaultLimits().SetNodes(100).SetCycles(50))
	limiter.Reset()

	limiter.EvaluateStopReason(100, 1, 50)
	reason := limiter.StopReason()
	if reason&StopNodes != StopNodes || reason&StopCycles != StopCycles {
		t.Errorf("StopReason=%v, want Nodes|Cycles", reason)
	}
	if got, want := reason.String(), "Nodes|Cycles"; got != want {
		t.Errorf("StopReason.String()=%q, want %q", got, want)
	}
}
