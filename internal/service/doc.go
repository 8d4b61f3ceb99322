// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Subpackages cover the distinct domain areas: auth (tokens, passwords),
// word (saved word management), review (review submission, scheduling and
// forecasting) and batch (priority batch assembly). Services receive
// their dependencies through constructor injection and depend only on
// store interfaces, never on concrete infrastructure; transactional
// boundaries are applied where an operation spans multiple repositories,
// most importantly the review write path.
package service
