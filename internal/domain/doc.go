// Package domain contains the core study entities of FlipIQ: study guides,
// their flashcards and scheduled study sessions, and community chat messages.
//
// Entities are plain records with immutable identifiers. They are created
// through constructors that validate their invariants and are never mutated
// after they have been handed to the store.
package domain
