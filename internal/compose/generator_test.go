package compose

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/craftctl-dev/craftctl/internal/models"
)

func paperInfo() models.ServerInfo {
	return models.ServerInfo{
		Version:    "LATEST",
		Port:       "25565",
		Memory:     "2G",
		DataPath:   "/srv/mc/alice",
		ServerType: models.TypePaper,
	}
}

func TestGenerate_PaperServer(t *testing.T) {
	doc := Generate("alice", paperInfo())

	assert.Equal(t, "3.8", doc.Version)
	require.Contains(t, doc.Services, "alice")

	svc := doc.Services["alice"]
	assert.Equal(t, "itzg/minecraft-server", svc.Image)
	assert.Equal(t, "mc-alice", svc.ContainerName)
	assert.Equal(t, []string{"25565:25565"}, svc.Ports)
	assert.Equal(t, []string{"/srv/mc/alice:/data"}, svc.Volumes)
	assert.Equal(t, "unless-stopped", svc.Restart)
	assert.True(t, svc.StdinOpen)
	assert.True(t, svc.TTY)

	assert.Equal(t, []string{
		"EULA=TRUE",
		"MEMORY=2G",
		"VERSION=LATEST",
		"TYPE=PAPER",
	}, svc.Environment)
}

func TestGenerate_ForgeLoaderVersion(t *testing.T) {
	info := models.ServerInfo{
		Version:          "1.20.1",
		Port:             "25566",
		Memory:           "4G",
		DataPath:         "/srv/mc/bob",
		ServerType:       models.TypeForge,
		ModLoader:        "FORGE",
		ModLoaderVersion: "47.1.0",
	}

	svc := Generate("bob", info).Services["bob"]

	// The loader adds a TYPE override on top of the base type entry.
	assert.Contains(t, svc.Environment, "TYPE=FORGE")
	assert.Contains(t, svc.Environment, "FORGE_VERSION=47.1.0")
	assert.NotContains(t, svc.Environment, "FABRIC_VERSION=47.1.0")
}

func TestGenerate_FabricLoaderVersion(t *testing.T) {
	info := models.ServerInfo{
		Version:          "LATEST",
		Port:             "25567",
		Memory:           "2G",
		DataPath:         "/srv/mc/carol",
		ServerType:       models.TypeFabric,
		ModLoader:        "FABRIC",
		ModLoaderVersion: "0.14.21",
	}

	svc := Generate("carol", info).Services["carol"]
	assert.Contains(t, svc.Environment, "TYPE=FABRIC")
	assert.Contains(t, svc.Environment, "FABRIC_VERSION=0.14.21")
}

func TestGenerate_JavaArgs(t *testing.T) {
	info := paperInfo()
	info.JavaArgs = "-XX:+UseG1GC -XX:MaxGCPauseMillis=200"

	svc := Generate("alice", info).Services["alice"]
	assert.Contains(t, svc.Environment, "JVM_OPTS=-XX:+UseG1GC -XX:MaxGCPauseMillis=200")
}

func TestGenerate_RconListener(t *testing.T) {
	info := paperInfo()
	info.RconPort = "25575"
	info.RconPassword = "secret"

	svc := Generate("alice", info).Services["alice"]
	assert.Contains(t, svc.Environment, "ENABLE_RCON=true")
	assert.Contains(t, svc.Environment, "RCON_PASSWORD=secret")
	assert.Contains(t, svc.Ports, "25575:25575")
}

func TestGenerate_NoRconWithoutPassword(t *testing.T) {
	svc := Generate("alice", paperInfo()).Services["alice"]
	assert.NotContains(t, svc.Environment, "ENABLE_RCON=true")
	assert.Len(t, svc.Ports, 1)
}

func TestMarshal_RoundTrip(t *testing.T) {
	doc := Generate("alice", paperInfo())

	raw, err := doc.Marshal()
	require.NoError(t, err)

	var got Document
	require.NoError(t, yaml.Unmarshal(raw, &got))
	assert.Equal(t, doc, got)

	assert.Contains(t, string(raw), "25565:25565")
	assert.Contains(t, string(raw), "container_name: mc-alice")
}

func TestValidate_AcceptsGeneratedDescriptor(t *testing.T) {
	doc := Generate("alice", paperInfo())
	raw, err := doc.Marshal()
	require.NoError(t, err)

	assert.NoError(t, Validate(context.Background(), "alice", raw))
}

func TestValidate_RejectsMalformedDescriptor(t *testing.T) {
	err := Validate(context.Background(), "alice", []byte("services: [not, a, mapping]"))
	require.Error(t, err)

	var parseErr models.ConfigParseError
	assert.ErrorAs(t, err, &parseErr)
}
