package config

import "testing"

func TestFields_GetMatchesDefaults(t *testing.T) {
	c := DefaultConfig()
	want := map[string]string{
		"closure_threshold": "10.0",
		"chakra_size":       "300",
		"auto_show":         "true",
		"export_dir":        ".",
	}
	seen := map[string]bool{}
	for _, f := range Fields() {
		if seen[f.ID] {
			t.Fatalf("duplicate field id %q", f.ID)
		}
		seen[f.ID] = true
		if w, ok := want[f.ID]; ok && f.Get(c) != w {
			t.Fatalf("%s: got %q want %q", f.ID, f.Get(c), w)
		}
	}
	for id := range want {
		if !seen[id] {
			t.Fatalf("missing field %q", id)
		}
	}
}

func TestApplyText_UpdatesCopy(t *testing.T) {
	c := DefaultConfig()
	next, err := ApplyText(c, map[string]string{
		"closure_threshold": " 12.5 ",
		"rotate_step":       "5",
		"dark_mode":         "yes",
		"export_dir":        "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.ClosureThreshold != 12.5 || next.RotateStep != 5 || !next.DarkMode {
		t.Fatalf("values not applied: %+v", next)
	}
	if next.ExportDir != "." {
		t.Fatalf("blank export dir should keep current value, got %q", next.ExportDir)
	}
	if c.ClosureThreshold != 10 || c.DarkMode {
		t.Fatalf("source config mutated: %+v", c)
	}
}

func TestApplyText_RejectsBadInput(t *testing.T) {
	c := DefaultConfig()
	if _, err := ApplyText(c, map[string]string{"chakra_size": "big"}); err == nil {
		t.Fatalf("expected error for non-integer chakra size")
	}
	if _, err := ApplyText(c, map[string]string{"auto_show": "maybe"}); err == nil {
		t.Fatalf("expected error for non-boolean auto show")
	}
}

func TestApplyText_ClampsThroughValidate(t *testing.T) {
	next, err := ApplyText(DefaultConfig(), map[string]string{"chakra_size": "10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.ChakraSize != 300 {
		t.Fatalf("expected clamp to 300, got %d", next.ChakraSize)
	}
}
