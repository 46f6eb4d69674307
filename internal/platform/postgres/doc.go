// Package postgres contains PostgreSQL implementations of the store
// interfaces defined in internal/store. All stores accept a store.DBTX so
// they work against either a database connection or a transaction, and a
// component logger for structured logging.
package postgres
