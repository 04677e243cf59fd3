package depgraph

import "fmt"

// ConfigError reports a malformed or unreadable build descriptor.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid build descriptor %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// UnsupportedFileTypeError reports a graph-reachable file whose extension is
// not one of the supported header/source/inline kinds.
type UnsupportedFileTypeError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q: %s", e.Ext, e.Path)
}

// ModuleResolutionError reports a file whose absolute path matches no indexed
// module name.
type ModuleResolutionError struct {
	Path string
}

func (e *ModuleResolutionError) Error() string {
	return fmt.Sprintf("no module matches file: %s", e.Path)
}
