package common

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/craftctl-dev/craftctl/internal/models"
)

// serverNameRegex matches the registry key constraint: alphanumeric plus
// hyphen and underscore. Names double as directory and container name
// parts.
var serverNameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateServerName checks a proposed server name.
func ValidateServerName(name string) error {
	if name == "" {
		return fmt.Errorf("server name cannot be empty")
	}
	if !serverNameRegex.MatchString(name) {
		return models.InvalidNameError{Name: name}
	}
	return nil
}

// ValidatePort checks a string-encoded port number.
func ValidatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("port must be a number, got %q", port)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", n)
	}
	return nil
}

// ParseServerType resolves a user-supplied type string against the fixed
// enumeration, case-insensitively.
func ParseServerType(s string) (models.ServerType, error) {
	upper := models.ServerType(strings.ToUpper(strings.TrimSpace(s)))
	for _, t := range models.ServerTypes {
		if upper == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown server type %q (see 'craftctl versions')", s)
}

// Confirm asks a yes/no question on the terminal. EOF or anything but an
// explicit yes counts as no.
func Confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
