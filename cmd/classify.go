package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"marketplace/internal/config"
	"marketplace/pkg/logger"
	"marketplace/pkg/taxonomy"
	"os"
	"strings"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// writeMatch prints m as one JSON line.
func writeMatch(w io.Writer, title string, m taxonomy.Match) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.Obj(func(e *jx.Encoder) {
		e.Field("title", func(e *jx.Encoder) { e.Str(title) })
		e.Field("category", func(e *jx.Encoder) { e.Str(m.Category) })
		e.Field("reason", func(e *jx.Encoder) { e.Str(string(m.Reason)) })
		if m.Keyword != "" {
			e.Field("keyword", func(e *jx.Encoder) { e.Str(m.Keyword) })
		}
	})

	if _, err := e.WriteTo(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)

	return err
}

// maxLineSize bounds a single stdin title.
const maxLineSize = 1 << 20

// classifyLines classifies every non empty line of r against legacy.
func classifyLines(tx *taxonomy.Taxonomy, r io.Reader, w io.Writer, legacy string) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for sc.Scan() {
		title := strings.TrimSpace(sc.Text())
		if title == "" {
			continue
		}
		if err := writeMatch(w, title, tx.ClassifyProduct(title, legacy)); err != nil {
			return err
		}
	}

	return sc.Err()
}

// classifyCommand constructs the 'classify' subcommand that runs the
// classifier offline on titles given as arguments or read from stdin.
func classifyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [title...]",
		Short: "Classifies product titles without touching the database",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			legacy, _ := cmd.Flags().GetString("category")
			tx := getTaxonomy(ctx, cfg)

			if len(args) == 0 {
				if err := classifyLines(tx, os.Stdin, os.Stdout, legacy); err != nil {
					logger.Fatal(ctx, "could not classify stdin", zap.Error(err))
				}

				return
			}

			for _, title := range args {
				if err := writeMatch(os.Stdout, title, tx.ClassifyProduct(title, legacy)); err != nil {
					logger.Fatal(ctx, "could not write result", zap.Error(err))
				}
			}
		},
	}

	cmd.Flags().String("category", "", "Legacy category or breadcrumb applied to every title")

	return cmd
}
