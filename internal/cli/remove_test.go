package cli

import (
	"testing"
)

func TestRemoveCmd_Config(t *testing.T) {
	if RemoveCmd.Use != "remove <name>" {
		t.Errorf("expected Use to be 'remove <name>', got %q", RemoveCmd.Use)
	}
	if RemoveCmd.RunE == nil {
		t.Error("expected RunE to be set")
	}
	flag := RemoveCmd.Flags().Lookup("force")
	if flag == nil {
		t.Fatal("expected --force flag to be registered")
	}
	if flag.Shorthand != "f" {
		t.Errorf("expected -f shorthand, got %q", flag.Shorthand)
	}
	if flag.DefValue != "false" {
		t.Errorf("expected --force to default to false, got %q", flag.DefValue)
	}
}

func TestCmdCmd_Config(t *testing.T) {
	if CmdCmd.Use != "cmd <name> <command...>" {
		t.Errorf("expected Use to be 'cmd <name> <command...>', got %q", CmdCmd.Use)
	}
	if CmdCmd.RunE == nil {
		t.Error("expected RunE to be set")
	}
	// At least a server name and one command word.
	if err := CmdCmd.Args(CmdCmd, []string{"alice"}); err == nil {
		t.Error("expected a single arg to be rejected")
	}
	if err := CmdCmd.Args(CmdCmd, []string{"alice", "say", "hi"}); err != nil {
		t.Errorf("expected name plus command words to be accepted, got %v", err)
	}
}
