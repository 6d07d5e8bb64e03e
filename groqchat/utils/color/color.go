// groqchat/utils/color/color.go
package color

import (
	"github.com/fatih/color"
)

var (
	promptColor    = color.New(color.FgCyan, color.Bold)
	infoColor      = color.New(color.FgGreen)
	warningColor   = color.New(color.FgYellow, color.Bold)
	errorColor     = color.New(color.FgRed, color.Bold)
	assistantColor = color.New(color.FgHiYellow, color.Bold)
	userColor      = color.New(color.FgHiBlue)
)

func ColorPrompt(s string) string {
	return promptColor.Sprint(s)
}

func ColorInfo(s string) string {
	return infoColor.Sprint(s)
}

func ColorWarning(s string) string {
	return warningColor.Sprint(s)
}

func ColorError(s string) string {
	return errorColor.Sprint(s)
}

func ColorAssistant(s string) string {
	return assistantColor.Sprint(s)
}

func ColorUser(s string) string {
	return userColor.Sprint(s)
}

// ColorSender picks the color used for a sender column.
func ColorSender(sender string) string {
	if sender == "assistant" {
		return ColorAssistant(sender)
	}
	return ColorUser(sender)
}

// Disable turns coloring off, e.g. when output is piped.
func Disable() {
	color.NoColor = true
}
