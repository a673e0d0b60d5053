package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "defaults were used")
	requireContains(t, out, "[OK] "+env.inputPath)
	requireContains(t, out, "directory will be created")

	target := filepath.Join(env.baseDir, "conf", "textpipe.toml")
	out, _, err = runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	out, _, err = runCLI(t, "--config", target, "config", "validate")
	if err != nil {
		t.Fatalf("config validate with sample: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
	requireContains(t, out, "Configuration valid")
}

func TestConfigValidateReportsMissingInput(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.Remove(env.inputPath); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, "config", "validate")
	if err == nil {
		t.Fatal("expected preflight failure for missing input")
	}
	requireContains(t, out, "[ERROR] "+env.inputPath)
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "textpipe.toml")

	if _, _, err := runCLI(t, "config", "init", "--path", target); err != nil {
		t.Fatalf("first init: %v", err)
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("init with --overwrite: %v", err)
	}
}

func TestConfigInitSkipsInvalidConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeConfig(t, "not = [valid toml")

	target := filepath.Join(env.baseDir, "fresh.toml")
	if _, _, err := runCLI(t, "--config", env.configPath, "config", "init", "--path", target); err != nil {
		t.Fatalf("config init should not load broken config: %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeConfig(t, "[report]\ntop = 3\n")

	out, _, err := runCLI(t, "--config", env.configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "[report]")
	requireContains(t, out, "top = 3")
	requireContains(t, out, filepath.Join(env.baseDir, "inputs", "sample.txt"))
}
