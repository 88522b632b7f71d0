package util

import (
	"os"
)

// UserHome returns the current user's home directory, or the working
// directory when none is known.
func UserHome() string {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		return homeDir
	}
	log.WithError(err).Warn("home directory unknown, using working directory")
	wd, _ := os.Getwd()
	return wd
}
