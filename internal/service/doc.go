// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and stores
// (defined in internal/store) to fulfill application features.
//
// Services receive dependencies through constructor injection and apply
// transactional boundaries when an operation spans multiple store calls,
// such as the rating upsert that also recomputes an anime's average score.
// Store-level errors are translated to service-level errors so the API
// layer can map them to HTTP status codes without knowing about the
// persistence implementation.
package service
