// Command taxonomy validates a skill taxonomy file and optionally
// converts a spreadsheet taxonomy to JSON for embedding or deployment.
package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/talentsift/resume-parser/internal/skills"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 3 {
		logger.Error("usage", "cmd", "taxonomy validate <file> | taxonomy convert <file.xlsx>")
		os.Exit(2)
	}
	cmd, path := os.Args[1], os.Args[2]

	tax, err := skills.LoadTaxonomy(path)
	if err != nil {
		logger.Error("taxonomy load", "path", path, "error", err)
		os.Exit(1)
	}

	switch cmd {
	case "validate":
		logger.Info("taxonomy.valid", "path", path, "entries", tax.Len())
	case "convert":
		out := struct {
			Skills  []skills.Entry    `json:"skills"`
			Aliases map[string]string `json:"aliases,omitempty"`
		}{Skills: tax.Entries(), Aliases: tax.AliasNames()}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			logger.Error("encode taxonomy", "error", err)
			os.Exit(1)
		}
	default:
		logger.Error("unknown subcommand", "cmd", cmd)
		os.Exit(2)
	}
}
