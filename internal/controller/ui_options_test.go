package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := &StartConfig{mode: ModeApply}
	WithListMode()(cfg)
	if cfg.mode != ModeList {
		t.Fatalf("WithListMode() mode = %v, want %v", cfg.mode, ModeList)
	}

	WithApplyMode()(cfg)
	if cfg.mode != ModeApply {
		t.Fatalf("WithApplyMode() mode = %v, want %v", cfg.mode, ModeApply)
	}
}
