package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lehmann314159/latinvocab/internal/models"
	"github.com/lehmann314159/latinvocab/internal/services"
)

var (
	categoryFilter []string
	searchBy       string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the parts of speech in display order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range models.Categories() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.ID(), c.Label())
		}
	},
}

var chapterCmd = &cobra.Command{
	Use:   "chapter CHAPTER",
	Short: "List the entries introduced in one chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, args[0], services.Request{Scope: services.ScopeChapter})
	},
}

var cumulativeCmd = &cobra.Command{
	Use:   "cumulative CHAPTER",
	Short: "List the entries of every chapter up to and including CHAPTER",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, args[0], services.Request{Scope: services.ScopeCumulative})
	},
}

var searchCmd = &cobra.Command{
	Use:   "search CHAPTER TERM",
	Short: "Search the entries of chapters up to CHAPTER",
	Long: `Search the entries of every chapter up to and including CHAPTER.

By word (the default), TERM is a prefix of any Latin form and vowels match
with or without a macron: "mensa" finds "mēnsa". By definition, TERM may
appear anywhere in the English definition.

Examples:
  latinvocab search 10 amo
  latinvocab search 32 table --by definition`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := models.ParseSearchMode(searchBy)
		if err != nil {
			return err
		}
		req := services.Request{Scope: services.ScopeSearch, Term: args[1], Mode: mode}
		if strings.TrimSpace(req.Term) == "" {
			req.Scope = services.ScopeCumulative
		}
		return runLookup(cmd, args[0], req)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{chapterCmd, cumulativeCmd, searchCmd} {
		cmd.Flags().StringSliceVarP(&categoryFilter, "category", "c", nil, "restrict to these parts of speech (repeatable)")
	}
	searchCmd.Flags().StringVar(&searchBy, "by", "word", "search by word or definition")
}

func runLookup(cmd *cobra.Command, chapterArg string, req services.Request) error {
	ch, err := models.ParseChapter(chapterArg)
	if err != nil {
		return err
	}
	req.Chapter = ch

	for _, name := range categoryFilter {
		c, err := models.ParseCategory(name)
		if err != nil {
			return err
		}
		req.Categories = append(req.Categories, c)
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.Lookup.Lookup(cmd.Context(), req)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), outputFormat, result)
}

// render writes result as text, json or csv.
func render(w io.Writer, format string, result *models.LookupResult) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "csv":
		return services.WriteCSV(w, result)
	case "", "text":
		return renderText(w, result)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderText(w io.Writer, result *models.LookupResult) error {
	if result.Len() == 0 {
		_, err := fmt.Fprintln(w, "No entries found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, g := range result.Groups() {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintln(tw, g.Category.Label())
		for _, e := range g.Entries {
			fmt.Fprintf(tw, "  %s\t%s\n", e.Words, e.Definition)
		}
	}
	return tw.Flush()
}
