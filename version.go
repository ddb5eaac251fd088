package runoff

import _ "embed"

// Version is the release of the runoff engine, read from the VERSION file.
//
//go:embed VERSION
var Version string
