package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"
	"pkt.systems/xdf"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/xdf")
}

func main() {
	var (
		themeName   string
		widthFlag   int
		outPath     string
		boring      bool
		listThemes  bool
		keepMarkers bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("xdf", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&boring, "boring", "b", false, "Generate non-ANSI output")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&keepMarkers, "keep-markers", false, "Do not strip /// and ''' comment markers")
	flags.BoolVarP(&showVersion, "version", "v", false, "Print version and exit")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: xdf [flags] [file ...]\n\nFormats XML documentation comments for terminal display.\nReads from stdin when no files are given.\n\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}
	if listThemes {
		printThemes()
		return
	}

	raw, err := readInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	if !keepMarkers {
		raw = stripDocMarkers(raw)
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	theme, ok := xdf.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		printThemes()
		os.Exit(2)
	}
	if boring {
		theme = xdf.NewTheme("boring", xdf.Styles{})
	}

	if err := xdf.Render(xdf.RenderRequest{
		Raw:    raw,
		Writer: writer,
		Width:  resolveWidth(widthFlag),
		Theme:  theme,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "format: %v\n", err)
		os.Exit(1)
	}
}

func printThemes() {
	for _, name := range xdf.AvailableThemes() {
		fmt.Fprintln(os.Stdout, name)
	}
}

// readInputs concatenates the given files in order; no arguments or a
// lone "-" reads stdin.
func readInputs(args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		buf, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(buf), nil
	}
	var b strings.Builder
	for _, path := range args {
		buf, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		b.Write(buf)
	}
	return b.String(), nil
}

// stripDocMarkers removes per-line documentation comment markers ("///"
// and the VB-style triple apostrophe) so comments can be piped straight
// from source.
func stripDocMarkers(raw string) string {
	lines := strings.Split(raw, "\n")
	changed := false
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		switch {
		case strings.HasPrefix(trimmed, "///"):
			lines[i] = strings.TrimPrefix(trimmed, "///")
			changed = true
		case strings.HasPrefix(trimmed, "'''"):
			lines[i] = strings.TrimPrefix(trimmed, "'''")
			changed = true
		}
	}
	if !changed {
		return raw
	}
	return strings.Join(lines, "\n")
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if path == "" || path == "-" {
		return os.Stdout, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
