// Package store defines the persistence interfaces for the application's
// entities (users, saved words, review events, bundles) together with the
// sentinel errors implementations must return. Concrete PostgreSQL
// implementations live in internal/platform/postgres; services depend only
// on the interfaces defined here.
package store
