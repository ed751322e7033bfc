package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0phia-le/Sloth/internal/diagfmt"
	"github.com/s0phia-le/Sloth/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file" + driver.SourceExt + "|dir>",
	Short: "Tokenize Sloth source",
	Long:  `Tokenize breaks a Sloth source file (or every source file under a directory) into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json); default from sloth.toml or pretty")
	tokenizeCmd.Flags().Bool("cache", false, "serve and update the on-disk token cache")
	tokenizeCmd.Flags().Int("jobs", 0, "concurrent scans for directory targets (0 = GOMAXPROCS)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = resolveFormat(format, target)
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	info, err := os.Stat(target)
	if err == nil && info.IsDir() {
		jobs, _ := cmd.Flags().GetInt("jobs")
		return tokenizeDir(cmd, target, format, maxDiagnostics, jobs)
	}
	return tokenizeFile(cmd, target, format, maxDiagnostics)
}

func tokenizeFile(cmd *cobra.Command, path, format string, maxDiagnostics int) error {
	var result *driver.TokenizeResult
	var err error

	if cached, _ := cmd.Flags().GetBool("cache"); cached {
		cache, cacheErr := driver.OpenTokenCache("sloth")
		if cacheErr != nil {
			return fmt.Errorf("failed to open token cache: %w", cacheErr)
		}
		result, _, err = driver.TokenizeCached(path, maxDiagnostics, cache)
	} else {
		result, err = driver.Tokenize(path, maxDiagnostics)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	printDiagnostics(cmd, result)

	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens)
	}
}

func tokenizeDir(cmd *cobra.Command, dir, format string, maxDiagnostics, jobs int) error {
	fileSet, results, err := driver.TokenizeDir(cmd.Context(), dir, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	for _, res := range results {
		if res.Bag.HasErrors() || res.Bag.HasWarnings() {
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, diagfmt.PrettyOpts{
				Color:   useColor(cmd, os.Stderr),
				Context: 2,
			})
		}

		fmt.Fprintf(os.Stdout, "== %s\n", res.Path)
		switch format {
		case "json":
			if err := diagfmt.FormatTokensJSON(os.Stdout, res.Tokens); err != nil {
				return err
			}
		default:
			if err := diagfmt.FormatTokensPretty(os.Stdout, res.Tokens); err != nil {
				return err
			}
		}
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, result *driver.TokenizeResult) {
	if !result.Bag.HasErrors() && !result.Bag.HasWarnings() {
		return
	}
	result.Bag.Sort()
	diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Context: 2,
	})
}

// resolveFormat applies precedence: explicit flag, then the sloth.toml
// manifest nearest the target, then "pretty".
func resolveFormat(flag, target string) string {
	if flag != "" {
		return flag
	}
	if manifest, ok, err := loadProjectManifest(startDirFor(target)); err == nil && ok {
		if f := manifest.Config.Tokenize.Format; f != "" {
			return f
		}
	}
	return "pretty"
}
