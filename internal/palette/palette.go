// Package palette defines ANSI escape prefixes for themed run display.
package palette

// Shared attribute prefixes.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette maps run classifications to ANSI color prefixes.
type Palette struct {
	Text        string
	Keyword     string
	TypeName    string
	MemberName  string
	Parameter   string
	Punctuation string
}

// PaletteDefault keeps body text uncolored and tints signature parts with
// the standard 16-color set so it degrades on any terminal.
var PaletteDefault = Palette{
	Text:        "",
	Keyword:     "\x1b[34m",
	TypeName:    "\x1b[36m",
	MemberName:  "\x1b[33m",
	Parameter:   "\x1b[32m",
	Punctuation: "\x1b[90m",
}

// PaletteDoomGruvbox follows the Doom Emacs gruvbox colors.
var PaletteDoomGruvbox = Palette{
	Text:        "\x1b[38;5;223m",
	Keyword:     "\x1b[38;5;167m",
	TypeName:    "\x1b[38;5;214m",
	MemberName:  "\x1b[38;5;142m",
	Parameter:   "\x1b[38;5;109m",
	Punctuation: "\x1b[38;5;245m",
}

// PaletteDoomDracula follows the Dracula colors.
var PaletteDoomDracula = Palette{
	Text:        "\x1b[38;5;253m",
	Keyword:     "\x1b[38;5;212m",
	TypeName:    "\x1b[38;5;117m",
	MemberName:  "\x1b[38;5;84m",
	Parameter:   "\x1b[38;5;228m",
	Punctuation: "\x1b[38;5;61m",
}

// PaletteSolarizedDark follows the solarized dark colors.
var PaletteSolarizedDark = Palette{
	Text:        "\x1b[38;5;244m",
	Keyword:     "\x1b[38;5;64m",
	TypeName:    "\x1b[38;5;33m",
	MemberName:  "\x1b[38;5;136m",
	Parameter:   "\x1b[38;5;37m",
	Punctuation: "\x1b[38;5;240m",
}

// PaletteGithubLight follows the GitHub light colors.
var PaletteGithubLight = Palette{
	Text:        "\x1b[38;5;235m",
	Keyword:     "\x1b[38;5;160m",
	TypeName:    "\x1b[38;5;26m",
	MemberName:  "\x1b[38;5;90m",
	Parameter:   "\x1b[38;5;22m",
	Punctuation: "\x1b[38;5;240m",
}

// PaletteTokyoNight follows the Tokyo Night colors.
var PaletteTokyoNight = Palette{
	Text:        "\x1b[38;5;146m",
	Keyword:     "\x1b[38;5;141m",
	TypeName:    "\x1b[38;5;75m",
	MemberName:  "\x1b[38;5;149m",
	Parameter:   "\x1b[38;5;179m",
	Punctuation: "\x1b[38;5;60m",
}
