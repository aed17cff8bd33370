package models

// NotFoundError is returned when an operation names a server that is not in
// the registry.
type NotFoundError struct {
	Name string
}

func (e NotFoundError) Error() string {
	return "server '" + e.Name + "' not found"
}

// ExistsError is returned when create is asked for a name that is already
// registered.
type ExistsError struct {
	Name string
}

func (e ExistsError) Error() string {
	return "server '" + e.Name + "' already exists"
}

// InvalidNameError is returned before any filesystem mutation when a server
// name contains characters outside [A-Za-z0-9_-].
type InvalidNameError struct {
	Name string
}

func (e InvalidNameError) Error() string {
	return "invalid server name: " + e.Name
}

// ConfigParseError wraps a malformed registry or descriptor document.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e ConfigParseError) Error() string {
	return "failed to parse config " + e.Path + ": " + e.Err.Error()
}

func (e ConfigParseError) Unwrap() error { return e.Err }

// UnavailableError is returned when the container runtime cannot be found
// and could not be installed.
type UnavailableError struct{}

func (e UnavailableError) Error() string {
	return "docker is not installed"
}

// CancelledError is returned when the user declines a confirmation. The CLI
// boundary maps it to a successful no-op exit.
type CancelledError struct{}

func (e CancelledError) Error() string {
	return "operation cancelled"
}
