package walk

import "testing"

func TestStepsSingleUse(t *testing.T) {
	eng, err := New(WithSteps(5), WithWeights([]float64{1, 0, 0, 0}))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	steps, err := eng.GenerateStep(nil)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if steps.Remaining() != 5 {
		t.Errorf("expected 5 remaining, got %d", steps.Remaining())
	}

	first, ok := steps.Next()
	if !ok || first[0] != 1 {
		t.Fatalf("first step = %v, %v", first, ok)
	}

	count := 0
	for range steps.All() {
		count++
	}
	if count != 4 {
		t.Errorf("expected 4 positions after Next, got %d", count)
	}

	if _, ok := steps.Next(); ok {
		t.Error("exhausted stream yielded again")
	}
	for range steps.All() {
		t.Fatal("exhausted stream restarted")
	}
}

func TestStepsEarlyBreak(t *testing.T) {
	eng, err := New(WithSteps(4), WithWeights([]float64{0, 0, 1, 0}))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	steps, _ := eng.GenerateStep(nil)

	for pos := range steps.All() {
		if pos[1] != 1 {
			t.Fatalf("unexpected first position %v", pos)
		}
		break
	}

	pos, ok := steps.Next()
	if !ok || pos[1] != 2 {
		t.Errorf("expected to resume at [0 2], got %v, %v", pos, ok)
	}
}

func TestStepsYieldCopies(t *testing.T) {
	eng, err := New(WithSteps(2), WithWeights([]float64{1, 0, 0, 0}))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	steps, _ := eng.GenerateStep(nil)

	a, _ := steps.Next()
	a[0] = 100
	b, _ := steps.Next()
	if b[0] != 2 {
		t.Errorf("mutating a yielded position changed the stream: %v", b)
	}
}

func TestGenerateStepRejectsBadWeights(t *testing.T) {
	eng, err := New()
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if _, err := eng.GenerateStep([]float64{-1, 1, 1, 1}); err == nil {
		t.Error("expected error for negative weight")
	}
}
