package textstyle

// Escape-code tables for the color and style names accepted in field
// configuration. These are fixed data: layout arithmetic never inspects them.

const reset = "\x1b[0m"

var colorCodes = map[string]string{
	"light_red":    "\x1b[91m",
	"red":          "\x1b[31m",
	"dark_red":     "\x1b[31;2m",
	"light_green":  "\x1b[92m",
	"green":        "\x1b[32m",
	"dark_green":   "\x1b[32;2m",
	"light_yellow": "\x1b[93m",
	"yellow":       "\x1b[33m",
	"dark_yellow":  "\x1b[33;2m",
	"light_orange": "\x1b[38;5;215m",
	"orange":       "\x1b[38;5;208m",
	"dark_orange":  "\x1b[38;5;202m",
	"light_blue":   "\x1b[94m",
	"blue":         "\x1b[34m",
	"dark_blue":    "\x1b[34;2m",
	"light_purple": "\x1b[95m",
	"purple":       "\x1b[35m",
	"dark_purple":  "\x1b[35;2m",
	"light_pink":   "\x1b[95m",
	"pink":         "\x1b[38;5;205m",
	"dark_pink":    "\x1b[38;5;95m",
	"white":        "\x1b[37m",
	"grey":         "\x1b[90m",
	"black":        "\x1b[30m",
	"reset":        reset,
}

var styleCodes = map[string]string{
	"bold":       "\x1b[1m",
	"italic":     "\x1b[3m",
	"underlined": "\x1b[4m",
	"blink":      "\x1b[5m",
	"reverse":    "\x1b[7m",
	"hidden":     "\x1b[8m",
	"default":    "",
}
