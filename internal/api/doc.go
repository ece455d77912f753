package api

// Package api wraps the storefront backend's JSON/HTTP interface. It
// attaches the bearer token from the local store, unwraps the layered
// {code, data, message} response envelope, and normalizes business,
// transport, and network failures into a single typed error.
