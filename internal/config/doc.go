package config

// Package config holds the two configuration surfaces of the app: the
// deployment-level Config loaded through viper (API base URL, timeouts,
// dev proxy wiring) and the per-user Settings stored in Fyne preferences.
