package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftctl-dev/craftctl/internal/models"
)

func TestValidateServerName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "survival", false},
		{"with digits", "world2", false},
		{"with hyphen", "my-server", false},
		{"with underscore", "my_server", false},
		{"mixed case", "MyServer", false},
		{"empty", "", true},
		{"space", "my server", true},
		{"slash", "my/server", true},
		{"dot", "my.server", true},
		{"colon", "my:server", true},
		{"unicode", "höhle", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateServerName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateServerName_TypedError(t *testing.T) {
	err := ValidateServerName("bad name")
	require.Error(t, err)
	assert.ErrorAs(t, err, &models.InvalidNameError{})
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default game port", "25565", false},
		{"low bound", "1", false},
		{"high bound", "65535", false},
		{"zero", "0", true},
		{"too high", "65536", true},
		{"negative", "-1", true},
		{"not a number", "abc", true},
		{"empty", "", true},
		{"trailing junk", "25565x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePort(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseServerType(t *testing.T) {
	tests := []struct {
		input string
		want  models.ServerType
	}{
		{"VANILLA", models.TypeVanilla},
		{"vanilla", models.TypeVanilla},
		{"Paper", models.TypePaper},
		{"forge", models.TypeForge},
		{"FABRIC", models.TypeFabric},
		{"spigot", models.TypeSpigot},
		{"purpur", models.TypePurpur},
		{"  paper  ", models.TypePaper},
	}

	for _, tt := range tests {
		got, err := ParseServerType(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseServerType_Unknown(t *testing.T) {
	for _, input := range []string{"bukkit", "", "paper2"} {
		_, err := ParseServerType(input)
		assert.Error(t, err, "input %q", input)
	}
}
