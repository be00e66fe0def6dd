// Package models defines the shared data transfer objects exchanged between
// the cabreaich containers, plus JSON Schema validation of raw messages
// against the contracts defined in schema/messages.schema.json.
package models
