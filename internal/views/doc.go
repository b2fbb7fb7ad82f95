// Package views turns store contents into the view models the shells render:
// the guide list, a flashcard review session, the month calendar and the
// community chat thread.
//
// View models hold only transient navigation state (a card index, an
// answer-shown flag, a selected date). They never mutate the store.
package views
