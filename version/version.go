package version

// Version is set at build time with -ldflags "-X github.com/lnusuite/lnu/version.Version=..."
var Version string
