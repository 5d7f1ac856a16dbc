package tui

// CatalogStaleMsg is sent by the filesystem watcher when anything under
// the catalog's directories changes after the build.
type CatalogStaleMsg struct{}
