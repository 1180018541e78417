package notewire

import _ "embed"

// Version is the library version, embedded from the VERSION file so the
// release process bumps a single location.
//
//go:embed VERSION
var Version string
