// Package postgres provides PostgreSQL implementations of the store
// interfaces, using database/sql over the pgx stdlib driver. All stores
// accept a store.DBTX so the same queries run on a pooled connection or
// inside a transaction; error mapping translates driver errors to the
// store package's sentinel errors.
package postgres
