// Package intrinsics provides the atomic and remote-write primitives that
// the rest of this module builds on: local compare-and-swap / fetch-and-add
// on 64-bit words, asynchronous "remote" arithmetic that targets a word
// anywhere in a core.Striped or core.Replicated value, and the
// acknowledgement-control bracket that lets a caller batch a region of
// remote writes and then force them to complete.
//
// Go has no hardware notion of a remote, fire-and-forget write, so this
// package models one: every Remote* call dispatches a goroutine that applies
// its update via a local compare-and-swap loop, and Fence blocks until every
// dispatched update so far has applied. The caller-visible contract holds
// regardless of the substrate: a Remote* call
// returns before its effect is observable, and only Fence (or
// AckController.ReenableAndFence) makes that effect visible to other
// goroutines.
package intrinsics
