package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/aleph-sh/aleph/internal/chain"
	"github.com/aleph-sh/aleph/internal/config"
	"github.com/aleph-sh/aleph/internal/docs"
	"github.com/aleph-sh/aleph/internal/doctor"
	"github.com/aleph-sh/aleph/internal/input"
	"github.com/aleph-sh/aleph/internal/invoke"
	"github.com/aleph-sh/aleph/internal/memory"
	"github.com/aleph-sh/aleph/internal/reservoir"
	"github.com/aleph-sh/aleph/internal/scaffold"
	"github.com/aleph-sh/aleph/internal/state"
	"github.com/aleph-sh/aleph/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "aleph",
		Usage:       "Sequential prompt-chaining orchestrator",
		Description: "Run 'aleph docs' for documentation on config syntax, protocols, reservoirs, and more.",
		Commands: []*cli.Command{
			initCmd(),
			runCmd(),
			statusCmd(),
			showCmd(),
			doctorCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func runCmd() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Execute the protocol chain",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Usage: "User input text (skips the editor)"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print the chain plan without invoking the model"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// CLAUDECODE guard
			if os.Getenv("CLAUDECODE") != "" {
				return fmt.Errorf("aleph cannot run inside Claude Code (CLAUDECODE env var is set). Run from a regular terminal")
			}

			projectRoot, cfg, err := loadProject()
			if err != nil {
				return err
			}
			artifactsDir := filepath.Join(projectRoot, ".aleph", "artifacts")

			mem := memory.New(cfg.InstancePath())
			r := &chain.Runner{
				Config:     cfg,
				Memory:     mem,
				Reservoirs: reservoir.NewDir(cfg.ReservoirPath()),
				Invoker: &invoke.ClaudeInvoker{
					Model:   cfg.Model,
					Timeout: time.Duration(cfg.Timeout) * time.Minute,
					Display: os.Stdout,
				},
				Commentary:   input.ObtainCommentary,
				ArtifactsDir: artifactsDir,
			}

			if cmd.Bool("dry-run") {
				r.PrintPlan(os.Stdout)
				return nil
			}

			if err := invoke.Preflight(); err != nil {
				return err
			}

			userInput := strings.TrimSpace(cmd.String("input"))
			if userInput == "" {
				userInput, err = input.ObtainUserInput(ctx, mem)
				if err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			_, err = r.Run(ctx, userInput)
			return err
		},
	}
}

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the last run's report",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			projectRoot, _, err := loadProject()
			if err != nil {
				return err
			}
			artifactsDir := filepath.Join(projectRoot, ".aleph", "artifacts")
			report, err := state.LoadReport(artifactsDir)
			if err != nil {
				return fmt.Errorf("loading report: %w (has a chain run yet?)", err)
			}
			ux.RenderStatus(report, artifactsDir)
			return nil
		},
	}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print a protocol's output from the last run, or the working memory",
		ArgsUsage: "[protocol]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			projectRoot, cfg, err := loadProject()
			if err != nil {
				return err
			}
			name := cmd.Args().First()
			if name == "" {
				text, err := memory.New(cfg.InstancePath()).Read()
				if err != nil {
					return fmt.Errorf("reading working memory: %w", err)
				}
				if text == "" {
					fmt.Printf("%s(no working memory yet)%s\n", ux.Dim, ux.Reset)
					return nil
				}
				fmt.Print(text)
				return nil
			}
			report, err := state.LoadReport(filepath.Join(projectRoot, ".aleph", "artifacts"))
			if err != nil {
				return fmt.Errorf("loading report: %w (has a chain run yet?)", err)
			}
			step := report.Step(name)
			if step == nil {
				return fmt.Errorf("no step %q in last run", name)
			}
			switch {
			case step.Skipped:
				fmt.Printf("%s(%s was skipped)%s\n", ux.Dim, name, ux.Reset)
			case step.Err != "":
				fmt.Printf("%s%s failed:%s %s\n", ux.Red, name, ux.Reset, step.Err)
			default:
				fmt.Println(step.Output)
			}
			return nil
		},
	}
}

func doctorCmd() *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Diagnose a failed chain run using AI",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			projectRoot, cfg, err := loadProject()
			if err != nil {
				return err
			}
			artifactsDir := filepath.Join(projectRoot, ".aleph", "artifacts")
			report, err := state.LoadReport(artifactsDir)
			if err != nil {
				return fmt.Errorf("loading report: %w (has a chain run yet?)", err)
			}
			inv := &invoke.ClaudeInvoker{Model: cfg.Model, Display: os.Stdout}
			return doctor.Run(ctx, artifactsDir, cfg, report, inv)
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a new .aleph/ directory with a starter chain",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'aleph docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

func loadProject() (string, *config.Config, error) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		return "", nil, err
	}
	cfg, err := config.Load(filepath.Join(projectRoot, ".aleph", "config.yaml"))
	if err != nil {
		return "", nil, fmt.Errorf("loading config: %w", err)
	}
	return projectRoot, cfg, nil
}

// findProjectRoot walks up from cwd looking for .aleph/config.yaml.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		configPath := filepath.Join(dir, ".aleph", "config.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no .aleph/config.yaml found (searched from cwd to root)")
		}
		dir = parent
	}
}
