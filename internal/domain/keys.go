package domain

// KeyPrefix namespaces every database key the service writes.
// Overridden at startup from configuration.
var KeyPrefix = "lisan:"
