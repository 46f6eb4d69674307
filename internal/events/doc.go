// Package events provides types and interfaces for decoupled in-process
// event dispatch.
//
// The lesson walk emits a TranslationRequestedEvent when a learner asks for
// a human translation. The walk never waits on the request being persisted;
// a background handler picks the event up and writes the pending record.
// This keeps the side channel fire-and-forget and the emitting service free
// of any dependency on the task machinery.
package events
