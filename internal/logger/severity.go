package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const sgrReset = "\x1b[0m"

type severity struct {
	head string
	sgr  string
}

var (
	sevDebug   = newSeverity("DEBUG", "#431f66")
	sevInfo    = newSeverity("INFO", "#1f4366")
	sevLog     = newSeverity("LOG", "#595959")
	sevWarning = newSeverity("WARNING", "#66431f")
	sevError   = newSeverity("ERROR", "#661f1f")
)

func newSeverity(head, bg string) severity {
	return severity{head: head, sgr: MustSGR("#ffffff", bg, true)}
}

// severityFor buckets arbitrary slog levels into the five known severities.
func severityFor(level slog.Level) severity {
	switch {
	case level >= LevelError:
		return sevError
	case level >= LevelWarning:
		return sevWarning
	case level >= LevelLog:
		return sevLog
	case level >= LevelInfo:
		return sevInfo
	default:
		return sevDebug
	}
}

// HexToRGB converts a "#rgb" or "#rrggbb" triplet to its components.
func HexToRGB(hex string) (r, g, b uint8, err error) {
	if !strings.HasPrefix(hex, "#") {
		return 0, 0, 0, fmt.Errorf("hex triplet must start with #, got %q", hex)
	}
	if len(hex) != 4 && len(hex) != 7 {
		return 0, 0, 0, fmt.Errorf("hex triplet must be in form #XXX or #XXXXXX, got %q", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parsing hex triplet %q: %w", hex, err)
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}

// SGR builds a 24-bit colour select graphic rendition sequence. Empty
// colours are left out.
func SGR(fgHex, bgHex string, bold bool) (string, error) {
	var params []string
	if bold {
		params = append(params, "1")
	}
	if fgHex != "" {
		r, g, b, err := HexToRGB(fgHex)
		if err != nil {
			return "", err
		}
		params = append(params, "38;2;"+rgbParams(r, g, b))
	}
	if bgHex != "" {
		r, g, b, err := HexToRGB(bgHex)
		if err != nil {
			return "", err
		}
		params = append(params, "48;2;"+rgbParams(r, g, b))
	}
	return "\x1b[" + strings.Join(params, ";") + "m", nil
}

// MustSGR is like SGR but panics on malformed colours.
func MustSGR(fgHex, bgHex string, bold bool) string {
	s, err := SGR(fgHex, bgHex, bold)
	if err != nil {
		panic(err)
	}
	return s
}

func rgbParams(r, g, b uint8) string {
	return strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b))
}
