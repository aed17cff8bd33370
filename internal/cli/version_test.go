package cli

import (
	"testing"
)

func TestVersionCmd_Config(t *testing.T) {
	if VersionCmd.Use != "version" {
		t.Errorf("expected Use to be 'version', got %q", VersionCmd.Use)
	}
	if VersionCmd.RunE == nil {
		t.Error("expected RunE to be set")
	}
	if VersionCmd.PersistentPreRunE == nil {
		t.Error("expected PersistentPreRunE override to be set")
	}
	// The override bypasses config and docker setup entirely.
	if err := VersionCmd.PersistentPreRunE(nil, nil); err != nil {
		t.Errorf("expected PersistentPreRunE to return nil, got %v", err)
	}
}

func TestVersionsCmd_Config(t *testing.T) {
	if VersionsCmd.Use != "versions" {
		t.Errorf("expected Use to be 'versions', got %q", VersionsCmd.Use)
	}
	if VersionsCmd.Run == nil {
		t.Error("expected Run to be set")
	}
	if VersionsCmd.PersistentPreRunE == nil {
		t.Error("expected PersistentPreRunE override to be set")
	}
	if err := VersionsCmd.PersistentPreRunE(nil, nil); err != nil {
		t.Errorf("expected PersistentPreRunE to return nil, got %v", err)
	}
}
