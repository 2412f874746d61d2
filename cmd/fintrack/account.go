package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/fintrack/fintrack-go/internal/api"
	"github.com/fintrack/fintrack-go/internal/domain/model"
)

func runDashboard(cmdCtx *commandContext, _ []string) error {
	if err := requireView(cmdCtx, "/expense"); err != nil {
		return err
	}

	sum, err := cmdCtx.App.Dashboard.Summary(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "Metric\tValue"); err != nil {
		return err
	}
	if err := writef(w, "Total Spent\t%.2f\n", sum.TotalExpenses); err != nil {
		return err
	}
	if err := writef(w, "Total Budget\t%.2f\n", sum.TotalBudget); err != nil {
		return err
	}
	if err := writef(w, "Total Saved\t%.2f\n", sum.TotalSaved); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(sum.ExpenseByCategory) == 0 {
		return nil
	}
	if err := writeln(os.Stdout); err != nil {
		return err
	}
	cw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(cw, "Category\tSpent\tBudget"); err != nil {
		return err
	}
	categories := make([]string, 0, len(sum.ExpenseByCategory))
	for cat := range sum.ExpenseByCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	for _, cat := range categories {
		if err := writef(cw, "%s\t%.2f\t%.2f\n",
			cat, sum.ExpenseByCategory[cat], sum.BudgetByCategory[cat]); err != nil {
			return err
		}
	}
	return cw.Flush()
}

func runAdmin(cmdCtx *commandContext, args []string) error {
	if err := requireView(cmdCtx, "/admin/dashboard"); err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("usage: fintrack admin <stats|users>")
	}
	switch args[0] {
	case "stats":
		return runAdminStats(cmdCtx)
	case "users":
		return runAdminUsers(cmdCtx)
	default:
		return fmt.Errorf("unknown admin subcommand %q", args[0])
	}
}

func runAdminStats(cmdCtx *commandContext) error {
	stats, err := cmdCtx.App.Admin.Stats(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "Metric\tValue"); err != nil {
		return err
	}
	if err := writef(w, "Users\t%d\n", stats.Users); err != nil {
		return err
	}
	if err := writef(w, "Expenses Total\t%.2f\n", stats.ExpensesTotal); err != nil {
		return err
	}
	if err := writef(w, "Budgets Total\t%.2f\n", stats.BudgetsTotal); err != nil {
		return err
	}
	if err := writef(w, "Savings Total\t%.2f\n", stats.SavingsTotal); err != nil {
		return err
	}
	return w.Flush()
}

func runAdminUsers(cmdCtx *commandContext) error {
	users, err := cmdCtx.App.Admin.Users(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tName\tEmail\tRole\tCreated"); err != nil {
		return err
	}
	for _, u := range users {
		if err := writef(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, u.CreatedAt); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runProfile(cmdCtx *commandContext, _ []string) error {
	if err := requireView(cmdCtx, "/profile"); err != nil {
		return err
	}

	profile, err := cmdCtx.App.Profile.Get(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "Name\t%s\n", profile.Name); err != nil {
		return err
	}
	if err := writef(w, "Email\t%s\n", profile.Email); err != nil {
		return err
	}
	if err := writef(w, "Role\t%s\n", profile.Role); err != nil {
		return err
	}
	if err := writef(w, "Member since\t%s\n", profile.CreatedAt); err != nil {
		return err
	}
	return w.Flush()
}

func runContact(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("contact", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var req model.ContactRequest
	fs.StringVar(&req.Name, "name", "", "Your name")
	fs.StringVar(&req.Email, "email", "", "Reply-to email")
	fs.StringVar(&req.Subject, "subject", "", "Message subject")
	fs.StringVar(&req.Message, "message", "", "Message body")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cmdCtx.App.Contact.Send(cmdCtx.Ctx, &req); err != nil {
		return err
	}
	return writeln(os.Stdout, "Message sent.")
}

func runExport(cmdCtx *commandContext, args []string) error {
	return runDownload(cmdCtx, args, "export", cmdCtx.App.Profile.Export)
}

func runBackup(cmdCtx *commandContext, args []string) error {
	return runDownload(cmdCtx, args, "backup", cmdCtx.App.Profile.Backup)
}

func runDownload(cmdCtx *commandContext, args []string, label string, fetch func(ctx context.Context) (*api.Download, error)) error {
	if err := requireView(cmdCtx, "/profile"); err != nil {
		return err
	}

	fs := flag.NewFlagSet(label, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	outDir := fs.String("out", ".", "Directory to write the file into")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := fetch(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	dest := filepath.Join(*outDir, filepath.Base(d.Filename))
	if err := os.WriteFile(dest, d.Data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return writef(os.Stdout, "Wrote %s (%d bytes)\n", dest, len(d.Data))
}
