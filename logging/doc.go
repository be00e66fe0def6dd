// Package logging builds the zerolog loggers shared by the cabreaich
// services and fixes the structured field names so every service emits the
// same keys.
package logging
