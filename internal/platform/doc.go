// Package platform holds OS-facing helpers: directory creation, the
// sales analytics CSV export, and opening exported files with the
// system default application.
package platform
