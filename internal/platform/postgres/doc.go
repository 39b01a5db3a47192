// Package postgres implements the store interfaces against a PostgreSQL
// database. Adapters accept a store.DBTX so they can run on a plain
// connection pool or inside a caller-managed transaction.
package postgres
