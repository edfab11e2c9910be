package main

import "testing"

func TestRunTooFewArgs(t *testing.T) {
	if code := run([]string{"text"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRunSearchRequiresPatternAndPath(t *testing.T) {
	if code := run([]string{"search", "pattern"}); code != 1 {
		t.Fatalf("expected exit code 1 for missing search path, got %d", code)
	}
}

func TestRunUnknownCommandFailsAtDispatch(t *testing.T) {
	if code := run([]string{"bogus", "nonexistent.pdf"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestApplyConfigNoPathIsNoOp(t *testing.T) {
	format := "text"
	if cfg := applyConfig("", &format); cfg != nil {
		t.Fatalf("expected nil config for an empty path, got %v", cfg)
	}
	if format != "text" {
		t.Fatalf("expected format untouched, got %q", format)
	}
}

func TestApplyConfigMissingFileWarnsAndReturnsNil(t *testing.T) {
	format := "text"
	if cfg := applyConfig("/nonexistent/path/config.yaml", &format); cfg != nil {
		t.Fatalf("expected nil config for an unreadable path, got %v", cfg)
	}
}
