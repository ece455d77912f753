// Package router maps navigation paths to named views and runs the
// pre-navigation guard. Routes carry metadata (title, auth and admin
// requirements, allowed roles); the guard consults only the persisted
// session, redirecting unauthenticated or under-privileged navigations
// before the target view is shown.
package router
