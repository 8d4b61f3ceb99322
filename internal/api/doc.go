// Package api contains the HTTP handlers and request/response models for
// the REST surface: authentication, saved word management, review
// submission and scheduling reads, and batch assembly. Handlers decode
// and validate input, delegate to the service layer, and map service
// errors to sanitized HTTP responses; no business logic lives here.
package api
