// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store. It uses database/sql over the
// pgx stdlib driver and translates PostgreSQL error codes into the
// store package's sentinel errors.
package postgres
