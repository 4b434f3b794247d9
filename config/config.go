package config

const (
	EmptyPath = ""

	DefaultFilename      = "gitsim"
	DefaultFileExtension = "yaml"
	DefaultEnvPrefix     = "GITSIM"

	DefaultLogLevel     = "info"
	DefaultLogFormat    = LogFormatPlain
	DefaultWorkDir      = "."
	DefaultContextLines = 2
)

// set through ldflags on release builds
var (
	BuildVersion = "dev"
	BuildCommit  = "none"
)

type Version int
