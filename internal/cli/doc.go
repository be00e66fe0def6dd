// Package cli implements the cabcommon command tree. Commands validate
// requirements manifests, inspect the shared service configuration, and
// check the health of the services the library talks to.
package cli
