package dockercli

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/craftctl-dev/craftctl/internal/models"
)

func TestCommandError_Message(t *testing.T) {
	base := errors.New("exit status 1")

	err := CommandError{Command: "docker compose up -d", Output: "no such service\n", Err: base}
	assert.Contains(t, err.Error(), `command "docker compose up -d" failed`)
	assert.Contains(t, err.Error(), "no such service")
	assert.ErrorIs(t, err, base)

	// No output means no trailing colon noise.
	bare := CommandError{Command: "docker attach mc-alice", Err: base}
	assert.Equal(t, `command "docker attach mc-alice" failed: exit status 1`, bare.Error())
}

func TestAvailable_MissingBinary(t *testing.T) {
	c := New("definitely-not-a-real-docker-binary", zap.NewNop())
	assert.False(t, c.Available())
}

func TestArchiveRoundTrip(t *testing.T) {
	if _, err := exec.LookPath("tar"); err != nil {
		t.Skip("tar not available")
	}

	c := New("docker", zap.NewNop())
	ctx := context.Background()

	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "world"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "server.properties"), []byte("motd=hello\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "world", "level.dat"), []byte("level"), 0o644))

	archive := filepath.Join(t.TempDir(), "alice_20260829_103000.tar.gz")
	require.NoError(t, c.ArchiveCreate(ctx, src, archive))

	dest := t.TempDir()
	require.NoError(t, c.ArchiveExtract(ctx, dest, archive))

	props, err := os.ReadFile(filepath.Join(dest, "server.properties"))
	require.NoError(t, err)
	assert.Equal(t, "motd=hello\n", string(props))

	level, err := os.ReadFile(filepath.Join(dest, "world", "level.dat"))
	require.NoError(t, err)
	assert.Equal(t, "level", string(level))
}

func TestArchiveExtract_MissingArchive(t *testing.T) {
	if _, err := exec.LookPath("tar"); err != nil {
		t.Skip("tar not available")
	}

	c := New("docker", zap.NewNop())
	err := c.ArchiveExtract(context.Background(), t.TempDir(), "/nonexistent/backup.tar.gz")
	require.Error(t, err)

	var cmdErr CommandError
	assert.ErrorAs(t, err, &cmdErr)
}

func TestNewInstaller_PlatformSelection(t *testing.T) {
	log := zap.NewNop()
	confirm := func(string) (bool, error) { return false, nil }

	if _, ok := NewInstaller("linux", confirm, log).(*scriptInstaller); !ok {
		t.Error("expected script installer on linux")
	}
	if _, ok := NewInstaller("darwin", confirm, log).(*brewInstaller); !ok {
		t.Error("expected brew installer on darwin")
	}
	if _, ok := NewInstaller("windows", confirm, log).(*manualInstaller); !ok {
		t.Error("expected manual installer on windows")
	}
}

func TestManualInstaller_DeclinedConfirmation(t *testing.T) {
	inst := &manualInstaller{confirm: func(string) (bool, error) { return false, nil }}
	err := inst.Install(context.Background())
	require.Error(t, err)
	assert.ErrorAs(t, err, &models.UnavailableError{})

	inst = &manualInstaller{confirm: func(string) (bool, error) { return true, nil }}
	assert.NoError(t, inst.Install(context.Background()))
}
