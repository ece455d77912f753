package model

// Package model defines domain data structures mirrored from the storefront
// backend: users and sessions, cart line items, orders, products with
// reviews, and the back-office record types. Structures are designed for
// direct binding in the UI; the client never owns the authoritative copy.
