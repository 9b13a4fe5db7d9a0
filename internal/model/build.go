package model

// BuildInfo содержит информацию о сборке, задаваемую через -ldflags
type BuildInfo struct {
	Version    string
	BuildTime  string
	CommitHash string
}
