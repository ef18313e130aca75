package config

const (
	AppName    = "studymentor"
	AppVersion = "1.0.0"
)

const (
	DefaultServerPort       = ":8080"
	DefaultLogLevel         = "info"
	DefaultBundleTTLSeconds = 60
)
