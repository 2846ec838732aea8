package version

import (
	"fmt"

	"github.com/fatih/color"
)

const Version = "v0.1.0"

// bannerTpl returns the banner shown by --version.
func bannerTpl() string {
	banner := `
   ____  ___  _       _____      _             _       _
  / ___|/ _ \| |     |_   _|   _| |_ ___  _ __(_) __ _| |
  \___ \ | | | |       | || | | | __/ _ \| '__| |/ _' | |
   ___) |_| | |___    | || |_| | || (_) | |  | | (_| | |
  |____/ \__\_\_____|   |_| \__,_|\__\___/|_|  |_|\__,_|_|
%s ` + Version

	banner = banner[1:] // This just removes the first newline character
	return color.New(color.FgCyan, color.Bold).Sprint(banner)
}

// ExercisesVersion returns the version banner of the exercise runner.
func ExercisesVersion() string {
	return fmt.Sprintf(bannerTpl(), "Exercises")
}

// TutorialVersion returns the version banner of the CRUD walkthrough.
func TutorialVersion() string {
	return fmt.Sprintf(bannerTpl(), "Tutorial")
}
