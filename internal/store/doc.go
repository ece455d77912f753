package store

// Package store holds the client-side state containers. Each container
// keeps an in-memory snapshot mirroring remote resources, exposes derived
// read-only views recomputed on every read, and exposes actions that call
// the backend and reconcile the result into the snapshot. Cart mutations
// fall back to the persisted local mirror when the remote call fails.
