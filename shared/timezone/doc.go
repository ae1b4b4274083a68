// Package timezone keeps the application location used for stored and rendered timestamps.
//
// Call Init once at startup with the configured APP_TIMEZONE value. Until then, and when the
// name cannot be loaded, every helper works in UTC.
package timezone
