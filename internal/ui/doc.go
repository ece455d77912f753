// Package ui implements the Fyne storefront shell: the root layout with
// navigation bar and toast notifications, the localized view set, and
// the compact theme. Views stay thin; all state lives in the containers
// under internal/store and navigation is owned by internal/router.
package ui
