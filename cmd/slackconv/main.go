// Command slackconv converts Slack channel backup JSON files into a
// spreadsheet workbook for human review.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rusq/osenv/v2"

	"github.com/J-VITA/slack-channel-converter/internal/app"
	"github.com/J-VITA/slack-channel-converter/internal/convert"
)

var build = "dev"

// secrets defines the names of the supported dotenv files that
// environment overrides are loaded from.
var secrets = []string{".env", ".env.txt", "slackconv.env"}

// params is the command line parameters.
type params struct {
	cfg app.Config

	logFile      string
	jsonLog      bool
	traceFile    string
	verbose      bool
	printVersion bool
}

func main() {
	loadSecrets(secrets)

	p, err := parseCmdLine(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if p.printVersion {
		fmt.Println(build)
		return
	}

	lg, err := initLog(p.logFile, p.jsonLog, p.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	stopTrace := initTrace(p.traceFile)
	defer stopTrace()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, p); err != nil {
		lg.ErrorContext(ctx, "conversion failed", "error", err)
		color.New(color.FgRed).Fprintf(os.Stderr, "conversion failed: %s\n", err)
		stopTrace()
		os.Exit(1)
	}
}

func run(ctx context.Context, p params) error {
	if p.cfg.Input == "" {
		// no input on the command line: ask.
		if err := interactive(&p.cfg); err != nil {
			return err
		}
	}
	if _, err := os.Stat(p.cfg.Input); err != nil {
		return fmt.Errorf("file or folder not found: %s", p.cfg.Input)
	}

	out, err := app.Run(ctx, p.cfg)
	if err != nil {
		if errors.Is(err, convert.ErrNoInput) || errors.Is(err, convert.ErrEmpty) {
			// a normal "nothing to do" outcome, not a failure.
			color.New(color.FgYellow).Fprintf(os.Stderr, "nothing to do: %s\n", err)
			return nil
		}
		return err
	}
	color.New(color.FgGreen).Printf("conversion succeeded: %s\n", out)
	return nil
}

// parseCmdLine parses the command line arguments.
func parseCmdLine(args []string) (params, error) {
	fs := flag.NewFlagSet("slackconv", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			"Slackconv %s\n"+
				"Converts a Slack channel backup JSON file, or a folder of backup\n"+
				"fragments, into a workbook with one sheet per view.\n\n"+
				"Usage:  %s [flags] <input_path>\n\n",
			build, filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	var p params
	fs.StringVar(&p.cfg.Output, "o", "", "`output` location (default: input name with the _converted suffix)")
	fs.StringVar(&p.cfg.Output, "output", "", "alias for -o")
	fs.BoolVar(&p.cfg.Folder, "folder", false, "treat the input path as a folder and merge all JSON files in it\n(folders are detected automatically, the flag forces it)")
	fs.Var(&p.cfg.Format, "format", "output `format`, one of 'xlsx' or 'csv'")
	fs.StringVar(&p.cfg.OptionsFile, "options", osenv.Value("SLACKCONV_OPTIONS", ""), "conversion options `file` (TOML)")

	fs.StringVar(&p.logFile, "log", osenv.Value("LOG_FILE", ""), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&p.jsonLog, "log-json", osenv.Value("JSON_LOG", false), "log in JSON format")
	fs.StringVar(&p.traceFile, "trace", osenv.Value("TRACE_FILE", ""), "trace `file` (optional)")
	fs.BoolVar(&p.verbose, "v", osenv.Value("DEBUG", false), "verbose messages")
	fs.BoolVar(&p.printVersion, "V", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return p, err
	}
	p.cfg.Input = fs.Arg(0)
	p.cfg.Progress = true
	return p, nil
}

// loadSecrets loads environment overrides from the files in the secrets
// slice.
func loadSecrets(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}
