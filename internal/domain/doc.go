// Package domain defines the core business entities of the Leitner review
// system: cards, their mastery categories, and the errors shared across
// the application layers.
//
// Entities in this package are plain values with no dependencies on
// storage, transport, or scheduling concerns. Cards are immutable once
// constructed; every state transition produces a new Card value.
package domain
