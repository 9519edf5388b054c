package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/tentacle-scylla/cqlast/pkg/format"
	"github.com/tentacle-scylla/cqlast/pkg/lint"
	"github.com/tentacle-scylla/cqlast/pkg/parse"
	"github.com/tentacle-scylla/cqlast/pkg/schema"
)

func main() {
	app := &cli.App{
		Name:    "cqlast",
		Usage:   "CQL parser, linter, and formatter for Cassandra/ScyllaDB",
		Version: "0.1.0",
		Commands: []*cli.Command{
			lintCmd(),
			formatCmd(),
			parseCmd(),
			splitCmd(),
			schemaCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// config is the optional .cqlast.yaml file in the working directory.
type config struct {
	DefaultKeyspace   string `yaml:"default_keyspace"`
	Indent            string `yaml:"indent"`
	TrailingSemicolon *bool  `yaml:"trailing_semicolon"`
}

func loadConfig() (*config, error) {
	data, err := os.ReadFile(".cqlast.yaml")
	if err != nil {
		if os.IsNotExist(err) {
			return &config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing .cqlast.yaml: %w", err)
	}
	return &cfg, nil
}

func lintCmd() *cli.Command {
	return &cli.Command{
		Name:    "lint",
		Aliases: []string{"l", "check"},
		Usage:   "Validate CQL syntax",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Read CQL from file",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only output errors, no success message",
			},
		},
		Action: func(c *cli.Context) error {
			input, err := getInput(c)
			if err != nil {
				return err
			}

			results := lint.AnalyzeMultiple(input)
			hasErrors := false
			validStatements := 0

			for _, r := range results {
				if r.IsValid {
					validStatements++
					continue
				}
				hasErrors = true
				for _, e := range r.Errors {
					fmt.Fprintf(os.Stderr, "%s\n", e.Error())
					if e.Suggestion != "" {
						fmt.Fprintf(os.Stderr, "  suggestion: %s\n", e.Suggestion)
					}
				}
			}

			if !c.Bool("quiet") {
				if hasErrors {
					fmt.Fprintf(os.Stderr, "\n%d/%d statements valid\n", validStatements, len(results))
				} else {
					fmt.Printf("OK: %d statements valid\n", len(results))
				}
			}

			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}
}

func formatCmd() *cli.Command {
	return &cli.Command{
		Name:    "format",
		Aliases: []string{"fmt"},
		Usage:   "Format CQL statements",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Read CQL from file",
			},
			&cli.BoolFlag{
				Name:    "compact",
				Aliases: []string{"c"},
				Usage:   "Output compact single-line format",
			},
			&cli.StringFlag{
				Name:  "indent",
				Usage: "Indentation string (default: 4 spaces)",
			},
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result back to file (requires -f)",
			},
		},
		Action: func(c *cli.Context) error {
			input, err := getInput(c)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			opts := format.DefaultOptions()
			if c.Bool("compact") {
				opts = format.CompactOptions()
			}
			if cfg.Indent != "" {
				opts.IndentString = cfg.Indent
			}
			if indent := c.String("indent"); indent != "" {
				opts.IndentString = indent
			}
			if cfg.TrailingSemicolon != nil {
				opts.TrailingSemicolon = *cfg.TrailingSemicolon
			}

			output, err := format.String(input, opts)
			if err != nil {
				return err
			}

			if c.Bool("write") && c.String("file") != "" {
				return os.WriteFile(c.String("file"), []byte(output+"\n"), 0644)
			}

			fmt.Println(output)
			return nil
		},
	}
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:    "parse",
		Aliases: []string{"p"},
		Usage:   "Parse and analyze CQL statements",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Read CQL from file",
			},
		},
		Action: func(c *cli.Context) error {
			input, err := getInput(c)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ast := parse.Parse(input)
			for i, s := range ast.Statements {
				fmt.Printf("Statement %d:\n", i+1)
				fmt.Printf("  Type:     %s\n", s.Statement.Type())
				fmt.Printf("  Valid:    %v\n", !s.HasError)
				if ks := s.Statement.GetKeyspace(cfg.DefaultKeyspace); ks != "" {
					fmt.Printf("  Keyspace: %s\n", ks)
				}
				if tbl := s.Statement.GetTableName(); tbl != nil {
					fmt.Printf("  Table:    %s\n", tbl)
				}
				if !s.HasError {
					fmt.Printf("  Text:     %s\n", s.Statement)
				}
				if i < len(ast.Statements)-1 {
					fmt.Println()
				}
			}
			for _, e := range ast.Errors {
				fmt.Fprintf(os.Stderr, "%s\n", e.Error())
			}
			return nil
		},
	}
}

func splitCmd() *cli.Command {
	return &cli.Command{
		Name:  "split",
		Usage: "Split CQL input into statement regions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Read CQL from file",
			},
		},
		Action: func(c *cli.Context) error {
			input, err := getInput(c)
			if err != nil {
				return err
			}
			for _, region := range parse.Split(input) {
				fmt.Printf("[%d:%d] %s\n", region.StartByte, region.EndByte, strings.TrimSpace(region.Text))
			}
			return nil
		},
	}
}

func schemaCmd() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Build a schema from DDL statements and output it as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Read CQL from file",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write JSON schema to file",
			},
		},
		Action: func(c *cli.Context) error {
			input, err := getInput(c)
			if err != nil {
				return err
			}
			s, err := schema.LoadDDL(input)
			if err != nil {
				return err
			}
			if out := c.String("out"); out != "" {
				return s.SaveToJSON(out)
			}
			data, err := s.ToJSONIndent()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}

func getInput(c *cli.Context) (string, error) {
	// Check for file flag
	if file := c.String("file"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
		return string(data), nil
	}

	// Check for positional argument
	if c.NArg() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}

	// Check for stdin
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	// Interactive mode - read until empty line or EOF
	fmt.Fprintln(os.Stderr, "Enter CQL (empty line or Ctrl+D to finish):")
	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	return strings.Join(lines, "\n"), nil
}
