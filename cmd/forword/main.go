package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"forword/internal/core/filter"
	"forword/internal/core/normalize"
	"forword/internal/core/version"
	"forword/internal/platform/config"
	"forword/internal/platform/logger"
	"forword/internal/platform/store/pg"

	filtermod "forword/internal/services/api/filter/module"
)

const (
	modeSearch    = "search"
	modeReplace   = "replace"
	modeNormalize = "normalize"
	modeFind      = "find"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := config.New()
	o := filtermod.FromConfig(root)

	fs := flag.NewFlagSet("forword", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		dict     = fs.String("dict", o.Path, "dictionary file, one word per line (FORWORD_DICT_PATH)")
		mode     = fs.String("mode", modeReplace, "search | replace | normalize | find")
		token    = fs.String("token", o.Token, "replacement token (FORWORD_TOKEN)")
		ignore   = fs.String("ignore", "", "symbols skipped between letters, replaces the default set")
		noIgnore = fs.Bool("no-ignore", false, "skip no extra symbols")
		verbose  = fs.Bool("v", false, "log dictionary diagnostics and build stats")
		showVer  = fs.Bool("version", false, "print version and exit")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVer {
		fmt.Fprintln(stdout, version.Info("forword").String())
		return 0
	}
	switch *mode {
	case modeSearch, modeReplace, modeNormalize, modeFind:
	default:
		fmt.Fprintf(stderr, "forword: unknown -mode %q\n", *mode)
		return 2
	}

	lo := logger.FromEnv()
	lo.Writer = stderr
	if *verbose {
		lo.Level = "debug"
	} else if _, set := root.MayRaw("LOG_LEVEL"); !set {
		lo.Level = "warn"
	}
	logger.Init(lo)
	log := logger.Named("forword")

	o.Path, o.Token = *dict, *token
	switch {
	case *noIgnore:
		o.Ignored, o.HasIgnored = normalize.NewSymbolSet(), true
	case *ignore != "":
		o.Ignored, o.HasIgnored = normalize.ParseSymbolSet(*ignore), true
	}
	if o.Source == filtermod.SourceFile && o.Path == "" {
		fmt.Fprintln(stderr, "forword: -dict or FORWORD_DICT_PATH is required")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var db *pg.PG
	if o.Source == filtermod.SourcePG {
		var err error
		db, err = pg.Open(ctx, pg.Config{
			URL:     root.Prefix("SERVICE_PGSQL_").MustString("DBURL"),
			AppName: "forword",
		}, nil)
		if err != nil {
			log.Error().Err(err).Msg("postgres open failed")
			return 1
		}
		defer db.Close()
	}

	f, err := filter.Load(ctx, o.DictionarySource(db), o.FilterOptions(log)...)
	if err != nil {
		log.Error().Err(err).Msg("dictionary unavailable")
		return 1
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()
	enc := json.NewEncoder(out)

	emit := func(text string) error {
		switch *mode {
		case modeSearch:
			_, err := fmt.Fprintln(out, f.Search(text))
			return err
		case modeNormalize:
			_, err := fmt.Fprintln(out, f.NormalizeForDiagnostics(text))
			return err
		case modeFind:
			hits := f.Find(text)
			if hits == nil {
				hits = []filter.Hit{}
			}
			return enc.Encode(hits)
		default:
			_, err := fmt.Fprintln(out, f.Replace(text))
			return err
		}
	}

	if rest := fs.Args(); len(rest) > 0 {
		if err := emit(strings.Join(rest, " ")); err != nil {
			log.Error().Err(err).Msg("write failed")
			return 1
		}
		return 0
	}

	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)
	for sc.Scan() {
		if err := emit(sc.Text()); err != nil {
			log.Error().Err(err).Msg("write failed")
			return 1
		}
	}
	if err := sc.Err(); err != nil {
		log.Error().Err(err).Msg("read failed")
		return 1
	}
	return 0
}
