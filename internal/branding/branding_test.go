package branding

import "testing"

func TestEmbeddedBranding(t *testing.T) {
	if got := CLIName(); got != "initwiz" {
		t.Errorf("CLIName() = %q, want %q", got, "initwiz")
	}
	if got := HomeDir(); got != ".initwiz" {
		t.Errorf("HomeDir() = %q, want %q", got, ".initwiz")
	}
	if got := DisplayName(); got == "" {
		t.Error("DisplayName() should not be empty")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("package_manager"); got != "INITWIZ_PACKAGE_MANAGER" {
		t.Errorf("EnvVar() = %q, want %q", got, "INITWIZ_PACKAGE_MANAGER")
	}
}
