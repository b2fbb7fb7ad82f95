// Package generation turns a subject/topic pair into a study guide. It builds
// the instruction prompt, sends it through a TextGenerator (the boundary to
// the Gemini API, implemented in platform/gemini), parses the returned JSON
// into flashcards and lays out a seven-day study schedule.
//
// Any failure between the request and the parsed result falls back to a
// fixed set of templated flashcards. The Service publishes its loading and
// last-error state as generation.status events.
package generation
