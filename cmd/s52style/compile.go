package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/s52/pkg/s52"
)

func newCompileCmd() *cobra.Command {
	var (
		configPath  string
		rulesPath   string
		symbolsPath string
		sourceURL   string
		modeName    string
		name        string
		sprite      string
		output      string
		allModes    bool
	)

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Build a MapLibre style document",
		Long: `Compile builds a complete MapLibre style from the built-in S-52 lookup
table, palettes, and symbol registry.

Job settings come from a TOML config file, command line flags, or both;
flags win. The style is written to stdout unless --output names a file.
With --all-modes, one style per display mode is written into the --output
directory.`,
		Example: `  s52style compile --source-url https://tiles.example.com/enc.json
  s52style compile --config chart.toml --mode night --output night.json
  s52style compile --config chart.toml --all-modes --output styles/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := compileConfig{}
			if configPath != "" {
				var err error
				cfg, err = loadCompileConfig(configPath)
				if err != nil {
					return err
				}
			}

			if sourceURL != "" {
				cfg.Source.URL = sourceURL
				if cfg.Source.Type == "" {
					cfg.Source.Type = "vector"
				}
			}
			if modeName != "" {
				cfg.Mode = modeName
			}
			if name != "" {
				cfg.Name = name
			}
			if sprite != "" {
				cfg.Sprite = sprite
			}
			if rulesPath != "" {
				cfg.Rules = rulesPath
			}
			if symbolsPath != "" {
				cfg.Symbols = symbolsPath
			}

			opts, err := cfg.styleOptions()
			if err != nil {
				return err
			}

			layerCfg := cfg.layerConfig()
			layerCfg.Mode = opts.Mode
			compilerOpts := s52.CompilerOptions{Config: layerCfg}
			if cfg.Rules != "" {
				f, err := os.Open(cfg.Rules)
				if err != nil {
					return fmt.Errorf("open rules %s: %w", cfg.Rules, err)
				}
				defer f.Close()
				compilerOpts.Rules = f
			}
			if cfg.Symbols != "" {
				reg, err := loadSymbolsFile(cfg.Symbols)
				if err != nil {
					return err
				}
				compilerOpts.Registry = reg
			}

			compiler, err := s52.NewCompilerWithOptions(compilerOpts)
			if err != nil {
				return err
			}

			if allModes {
				return compileAllModes(cmd, compiler, opts, output)
			}
			return compileOne(cmd, compiler, opts, output)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "custom lookup table CSV (default: built-in)")
	cmd.Flags().StringVar(&symbolsPath, "symbols", "", "custom sprite-index JSON (default: built-in)")
	cmd.Flags().StringVar(&sourceURL, "source-url", "", "vector source TileJSON URL")
	cmd.Flags().StringVarP(&modeName, "mode", "m", "", "display mode: day, dusk, or night")
	cmd.Flags().StringVar(&name, "name", "", "style name")
	cmd.Flags().StringVar(&sprite, "sprite", "", "sprite base URL")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&allModes, "all-modes", false, "write one style per display mode into the output directory")

	return cmd
}

func compileOne(cmd *cobra.Command, compiler *s52.Compiler, opts s52.StyleOptions, output string) error {
	doc, diags, err := compiler.CreateStyleWithDiagnostics(opts)
	if err != nil {
		return err
	}
	reportDiagnostics(cmd, diags)

	if output == "" {
		return doc.Encode(cmd.OutOrStdout())
	}
	if err := writeStyle(doc, output); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d layers)\n", output, doc.LayerCount())
	return nil
}

func compileAllModes(cmd *cobra.Command, compiler *s52.Compiler, opts s52.StyleOptions, output string) error {
	if output == "" {
		return fmt.Errorf("--all-modes requires --output to name a directory")
	}
	if err := os.MkdirAll(output, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	set, err := s52.NewStyleSet(compiler, opts)
	if err != nil {
		return err
	}

	for _, mode := range set.Modes() {
		reportDiagnostics(cmd, set.Diagnostics(mode))

		path := filepath.Join(output, fmt.Sprintf("style-%s.json", strings.ToLower(mode.String())))
		doc := set.Style(mode)
		if err := writeStyle(doc, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d layers)\n", path, doc.LayerCount())
	}
	return nil
}

func loadSymbolsFile(path string) (*s52.SymbolRegistry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open symbols %s: %w", path, err)
	}
	defer f.Close()

	reg, err := s52.LoadSymbolRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("load symbols %s: %w", path, err)
	}
	return reg, nil
}

func writeStyle(doc *s52.StyleDocument, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := doc.Encode(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func reportDiagnostics(cmd *cobra.Command, diags []s52.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", d)
	}
}
