package utils

// Set through -ldflags at release build time.
var version = "dev"

func GetVersion() string {
	return version
}
