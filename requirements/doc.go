// Package requirements handles parsing and linting of pip-style dependency
// manifests (requirements.txt). It parses requirement specifiers into typed
// structures, translates version constraints for candidate checking, and
// detects duplicate declarations and unsatisfiable constraint sets.
package requirements
