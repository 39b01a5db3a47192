// Package store defines the persistence ports of the application.
//
// The only durable state in the system is the card set; CardStore is its
// contract. Implementations live under internal/platform (postgres for
// durable storage, memory for tests and local development). Services depend
// exclusively on the interfaces and sentinel errors defined here, never on
// a concrete adapter.
package store
