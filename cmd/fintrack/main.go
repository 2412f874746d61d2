package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/fintrack/fintrack-go/config"
	"github.com/fintrack/fintrack-go/internal/bootstrap"
	"github.com/fintrack/fintrack-go/internal/guard"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
	App    *bootstrap.App
}

func main() {
	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if err := printUsage(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	logger := bootstrap.InitLogger(cfg)

	ctx := context.Background()
	app, err := bootstrap.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "wire application", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Warn("close app", "error", closeErr)
		}
	}()

	cmdCtx := &commandContext{
		Ctx:    ctx,
		Logger: logger,
		Config: cfg,
		App:    app,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1)
	}
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Sign in with email and password",
			run:         runLogin,
		},
		"register": {
			name:        "register",
			description: "Create an account and sign in",
			run:         runRegister,
		},
		"google-login": {
			name:        "google-login",
			description: "Sign in with a Google account",
			run:         runGoogleLogin,
		},
		"logout": {
			name:        "logout",
			description: "End the session and clear local credentials",
			run:         runLogout,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the current session",
			run:         runWhoami,
		},
		"forgot-password": {
			name:        "forgot-password",
			description: "Request a password reset code by email",
			run:         runForgotPassword,
		},
		"verify-otp": {
			name:        "verify-otp",
			description: "Complete a password reset with the emailed code",
			run:         runVerifyOTP,
		},
		"dashboard": {
			name:        "dashboard",
			description: "Show spending, budget, and savings totals",
			run:         runDashboard,
		},
		"expense": {
			name:        "expense",
			description: "Manage expenses (list, add, rm)",
			run:         runExpense,
		},
		"budget": {
			name:        "budget",
			description: "Manage budgets (list, add, rm)",
			run:         runBudget,
		},
		"saving": {
			name:        "saving",
			description: "Manage savings goals (list, add, rm)",
			run:         runSaving,
		},
		"blog": {
			name:        "blog",
			description: "Manage blog posts (list, add, edit, rm)",
			run:         runBlog,
		},
		"admin": {
			name:        "admin",
			description: "Admin dashboard (stats, users)",
			run:         runAdmin,
		},
		"profile": {
			name:        "profile",
			description: "Show account details",
			run:         runProfile,
		},
		"contact": {
			name:        "contact",
			description: "Send a message to the site operators",
			run:         runContact,
		},
		"export": {
			name:        "export",
			description: "Download account data as a spreadsheet",
			run:         runExport,
		},
		"backup": {
			name:        "backup",
			description: "Download a full account backup archive",
			run:         runBackup,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: fintrack <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := cmds[name]
		if err := writef(os.Stdout, "  %-18s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

// requireView runs the navigation guard for the view a command renders and
// translates redirect decisions into CLI errors.
func requireView(cmdCtx *commandContext, path string) error {
	decision := cmdCtx.App.Guard.Check(path)
	switch decision.Action {
	case guard.ActionAllow:
		return nil
	case guard.ActionRedirectLogin:
		return fmt.Errorf("not signed in; run 'fintrack login' and retry %s", decision.From)
	case guard.ActionRedirectHome:
		return fmt.Errorf("your account does not have access to %s", path)
	default:
		return fmt.Errorf("unexpected guard decision %q", decision.Action)
	}
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, args...)
	return err
}
