// Package ports holds the interfaces the todo layers talk through. Handlers
// and the CLI call TodoService; the service calls TodoClient, which the
// backend adapter implements; readiness reads HealthRegistry.
package ports
