package styled

import "github.com/fatih/color"

// DimmedColor returns a dimmed *color.Color to print secondary information
// such as the text of the query being run.
func DimmedColor() *color.Color {
	return color.RGB(128, 128, 128)
}

// ErrorColor returns the *color.Color used for reported query errors.
func ErrorColor() *color.Color {
	return color.New(color.FgRed)
}

// HeadingColor returns the *color.Color used for section headings.
func HeadingColor() *color.Color {
	return color.New(color.FgCyan, color.Bold)
}

// DisableColor turns off ANSI colours for every helper in this package.
func DisableColor() {
	color.NoColor = true
}

func colorDisabled() bool {
	return color.NoColor
}
