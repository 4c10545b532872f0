package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/talentsift/resume-parser/internal/common"
	"github.com/talentsift/resume-parser/internal/parser"
)

func main() {
	flat := flag.Bool("flat", false, "emit the legacy flat field map instead of the typed record")
	ext := flag.String("ext", "", "declared file extension, overrides the path's own")
	jd := flag.String("jd", "", "path to a job description to match-score against")
	noRaw := flag.Bool("no-raw", false, "omit the normalized-text snapshot")
	timeout := flag.Duration("timeout", 2*time.Minute, "upper bound for the whole parse")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "resumeparse [flags] <resume-file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	opts := parser.Options{
		DeclaredExt: *ext,
		OmitRawText: *noRaw,
	}
	if *jd != "" {
		body, err := os.ReadFile(*jd)
		if err != nil {
			logger.Error("read job description", "path", *jd, "error", err)
			os.Exit(1)
		}
		opts.JobDescription = string(body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	p := parser.New(common.LoadConfig(), logger)
	record, err := p.Parse(ctx, path, opts)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			logger.Error("parse rejected", "code", appErr.Code, "error", err)
		} else {
			logger.Error("parse rejected", "error", err)
		}
		os.Exit(1)
	}

	var out any = record
	if *flat {
		out = record.Flat()
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
}
