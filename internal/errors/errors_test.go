package errors

import (
	"fmt"
	"testing"
)

func TestBuildDefaults(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("test error")
	ee := New(err).Build()

	if ee.Err.Error() != "test error" {
		t.Errorf("Expected error message 'test error', got '%s'", ee.Err.Error())
	}

	if ee.Category != CategoryGeneric {
		t.Errorf("Expected category 'generic' by default, got '%s'", ee.Category)
	}
}

func TestCategoryAndContext(t *testing.T) {
	t.Parallel()

	ee := Newf("ypred index mismatch").
		Category(CategoryYPred).
		Context("x_rows", 3).
		Context("ypred_rows", 4).
		Build()

	if !IsCategory(ee, CategoryYPred) {
		t.Errorf("Expected IsCategory to match %s", CategoryYPred)
	}
	if IsCategory(ee, CategoryLabelDict) {
		t.Error("IsCategory matched the wrong category")
	}

	ctx := ee.GetContext()
	if ctx["x_rows"] != 3 || ctx["ypred_rows"] != 4 {
		t.Errorf("Context not preserved: %v", ctx)
	}

	// Mutating the returned copy must not affect the error
	ctx["x_rows"] = 99
	if ee.GetContext()["x_rows"] != 3 {
		t.Error("GetContext returned a shared map")
	}
}

func TestExplicitComponent(t *testing.T) {
	t.Parallel()

	ee := Newf("bad mask params").
		Component("check").
		Category(CategoryMaskParams).
		Build()

	if ee.GetComponent() != "check" {
		t.Errorf("Expected component 'check', got '%s'", ee.GetComponent())
	}
}

func TestUnwrapChain(t *testing.T) {
	t.Parallel()

	base := NewStd("root cause")
	ee := New(fmt.Errorf("wrapped: %w", base)).Category(CategoryContributions).Build()

	if !Is(ee, base) {
		t.Error("Is failed to find the wrapped root cause")
	}

	var target *EnhancedError
	if !As(ee, &target) {
		t.Error("As failed to extract EnhancedError")
	}
}

func TestEnhancedErrorIsMatchesCategory(t *testing.T) {
	t.Parallel()

	a := ValidationError(CategoryLabelDict, "label_dict keys do not match")
	b := ValidationError(CategoryLabelDict, "different message, same category")

	if !Is(a, b) {
		t.Error("Expected two EnhancedErrors with the same category to match via Is")
	}
}
