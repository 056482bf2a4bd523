package gdbmiconf

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DebuggerPath != "gdb" {
		t.Errorf("DebuggerPath = %q, want gdb", cfg.DebuggerPath)
	}
	if cfg.Dialect != "gdb" {
		t.Errorf("Dialect = %q, want gdb", cfg.Dialect)
	}
	if !cfg.InferiorTTY {
		t.Error("InferiorTTY should default to true")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.DebuggerPath = "/usr/bin/lldb-mi"
	cfg.Dialect = "lldb"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.DebuggerPath != cfg.DebuggerPath || loaded.Dialect != cfg.Dialect {
		t.Errorf("Load() = %+v, want %+v", loaded, cfg)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultConfig()
	if cfg.DebuggerPath != want.DebuggerPath || cfg.Dialect != want.Dialect || cfg.LogLevel != want.LogLevel {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}
