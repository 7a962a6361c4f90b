package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"faicon/internal/config"
	"faicon/internal/icons"
	"faicon/internal/model"
	"faicon/internal/report"
	"faicon/internal/style"
	"faicon/internal/tui"
	"faicon/internal/variant"
	"faicon/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(cfg *config.Config, currentVer string) {
	if !cfg.UpdateEnabled() {
		fmt.Println("No release source configured; set [update] owner and repository in config.toml")
		return
	}
	githubTag := &latest.GithubTag{
		Owner:      cfg.Update.Owner,
		Repository: cfg.Update.Repository,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		slog.Debug("update check failed", slog.Any("err", err))
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: faicon [options]\n\n")
		fmt.Fprintf(os.Stderr, "faicon resolves icons and style variants from an embedded catalog.\n")
		fmt.Fprintf(os.Stderr, "It shows how each icon reacts to variant and color changes.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  faicon                         # Start TUI inspector\n")
		fmt.Fprintf(os.Stderr, "  faicon --variant duotone-thin  # Start TUI with a root variant\n")
		fmt.Fprintf(os.Stderr, "  faicon --report -o r.txt       # Save catalog coverage report to file\n")
		fmt.Fprintf(os.Stderr, "  faicon --json                  # Output coverage as JSON\n")
		fmt.Fprintf(os.Stderr, "  faicon --web --addr :9000      # Serve styled icons over HTTP\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Output catalog coverage as JSON")
	reportFlag := pflag.BoolP("report", "r", false, "Print a catalog coverage report")
	markdownFlag := pflag.BoolP("markdown", "m", false, "Print the catalog as a markdown table")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "List missing variants in the report and enable debug logging")
	webFlag := pflag.BoolP("web", "w", false, "Start web mode")
	addrFlag := pflag.String("addr", "", "Listen address for web mode (overrides config)")
	configFlag := pflag.StringP("config", "c", "", "Path to config.toml")
	variantFlag := pflag.String("variant", "", "Root variant, e.g. sharp-duotone-light (overrides config)")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("faicon version %s\n", model.Version)
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		slog.Warn("config", slog.Any("err", err))
	}
	if *variantFlag != "" {
		if _, err := variant.Parse(*variantFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		cfg.Style.Variant = *variantFlag
	}
	if *addrFlag != "" {
		cfg.Web.Addr = *addrFlag
	}
	root, err := cfg.RootStyle()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
		os.Exit(2)
	}

	if *updateFlag {
		checkUpdate(cfg, model.Version)
		return
	}

	if *webFlag {
		srv := web.NewServer(icons.Catalog, root, icons.DefaultStyle, slog.Default())
		if err := web.StartServer(cfg.Web.Addr, srv); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *reportFlag {
		runReportMode(*outputFlag, *verboseFlag)
		return
	}

	if *markdownFlag {
		fmt.Print(icons.Catalog.Markdown())
		return
	}

	if *jsonFlag {
		runJsonMode()
		return
	}

	// Default: TUI
	runTuiMode(cfg, root)
}

func runReportMode(outputFile string, verbose bool) {
	text := report.Generate(report.Analyze(icons.Catalog), verbose)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(text), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Print(text)
	}
}

func runJsonMode() {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report.Analyze(icons.Catalog)); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

func runTuiMode(cfg *config.Config, root style.Style) {
	m := tui.InitialModel(icons.Catalog, root, icons.DefaultStyle, slog.Default())
	var opts []tea.ProgramOption
	if cfg.TUI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(&m, opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
