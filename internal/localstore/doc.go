package localstore

// Package localstore persists the client-side mirror of remote state in
// Fyne preferences: the signed-in user, the bearer token, and the cart
// line items. It is a best-effort cache for convenience and degraded
// offline behavior, never a source of truth.
