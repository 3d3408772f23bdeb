package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

const bannerText = `
     ██╗ ██████╗ ██████╗      █████╗ ███╗   ██╗ █████╗ ██╗  ██╗   ██╗███████╗██╗███████╗
     ██║██╔═══██╗██╔══██╗    ██╔══██╗████╗  ██║██╔══██╗██║  ╚██╗ ██╔╝██╔════╝██║██╔════╝
     ██║██║   ██║██████╔╝    ███████║██╔██╗ ██║███████║██║   ╚████╔╝ ███████╗██║███████╗
██   ██║██║   ██║██╔══██╗    ██╔══██║██║╚██╗██║██╔══██║██║    ╚██╔╝  ╚════██║██║╚════██║
╚█████╔╝╚██████╔╝██████╔╝    ██║  ██║██║ ╚████║██║  ██║███████╗██║   ███████║██║███████║
 ╚════╝  ╚═════╝ ╚═════╝     ╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝╚══════╝╚═╝   ╚══════╝╚═╝╚══════╝
 @fr4nk3nst1ner
`

// ColorizeText applies a random color gradient to the input text
func ColorizeText(text string) string {
	if len(text) < 2 {
		return text
	}

	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	firstPoint := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	var coloredText strings.Builder
	for i, s := range strings.Split(text, "") {
		coloredText.WriteString(startColor.Fade(0, float32(len(text)), float32(i%(len(text)/2)), firstPoint).Sprint(s))
	}

	return coloredText.String()
}

// PrintBanner displays the application banner
func PrintBanner(w io.Writer, silence bool) {
	if !silence {
		fmt.Fprintln(w, ColorizeText(bannerText))
	}
}

// FormatURL formats a URL, optionally as a clickable terminal hyperlink using OSC 8 escape sequence
func FormatURL(url, label string, useHyperlink bool) string {
	if !useHyperlink || label == "" {
		return url
	}
	// OSC 8 terminal hyperlink format, terminated with BEL for wider compatibility
	return fmt.Sprintf("\033]8;;%s\a%s\033]8;;\a", url, label)
}

// ColorizeAge colors a posting age: green within a day, yellow within a week, red after that
func ColorizeAge(text string, minutes int, ok bool) string {
	switch {
	case !ok:
		return pterm.Gray(text)
	case minutes <= 1440:
		return pterm.Green(text)
	case minutes <= 10080:
		return pterm.Yellow(text)
	default:
		return pterm.Red(text)
	}
}
