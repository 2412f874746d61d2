package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fintrack/fintrack-go/internal/domain/model"
)

func runExpense(cmdCtx *commandContext, args []string) error {
	if err := requireView(cmdCtx, "/expense"); err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("usage: fintrack expense <list|add|rm> [flags]")
	}
	switch args[0] {
	case "list":
		return runExpenseList(cmdCtx)
	case "add":
		return runExpenseAdd(cmdCtx, args[1:])
	case "rm":
		return runResourceDelete(args[1:], "expense", cmdCtx.App.Expenses.Delete, cmdCtx)
	default:
		return fmt.Errorf("unknown expense subcommand %q", args[0])
	}
}

func runExpenseList(cmdCtx *commandContext) error {
	expenses, err := cmdCtx.App.Expenses.List(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tDate\tCategory\tAmount"); err != nil {
		return err
	}
	for _, e := range expenses {
		if err := writef(w, "%s\t%s\t%s\t%.2f\n", e.ID, e.ExpenseDate, e.Category, e.Amount); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runExpenseAdd(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("expense add", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var req model.CreateExpenseRequest
	fs.StringVar(&req.Category, "category", "", "Expense category")
	fs.Float64Var(&req.Amount, "amount", 0, "Amount spent")
	fs.StringVar(&req.ExpenseDate, "date", "", "Expense date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cmdCtx.App.Expenses.Create(cmdCtx.Ctx, &req); err != nil {
		return err
	}
	return writeln(os.Stdout, "Expense recorded.")
}

func runBudget(cmdCtx *commandContext, args []string) error {
	if err := requireView(cmdCtx, "/budget"); err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("usage: fintrack budget <list|add|rm> [flags]")
	}
	switch args[0] {
	case "list":
		return runBudgetList(cmdCtx)
	case "add":
		return runBudgetAdd(cmdCtx, args[1:])
	case "rm":
		return runResourceDelete(args[1:], "budget", cmdCtx.App.Budgets.Delete, cmdCtx)
	default:
		return fmt.Errorf("unknown budget subcommand %q", args[0])
	}
}

func runBudgetList(cmdCtx *commandContext) error {
	budgets, err := cmdCtx.App.Budgets.List(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tCategory\tLimit"); err != nil {
		return err
	}
	for _, b := range budgets {
		if err := writef(w, "%s\t%s\t%.2f\n", b.ID, b.Category, b.Amount); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runBudgetAdd(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("budget add", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var req model.CreateBudgetRequest
	fs.StringVar(&req.Category, "category", "", "Budget category")
	fs.Float64Var(&req.Amount, "amount", 0, "Monthly limit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cmdCtx.App.Budgets.Create(cmdCtx.Ctx, &req); err != nil {
		return err
	}
	return writeln(os.Stdout, "Budget saved.")
}

func runSaving(cmdCtx *commandContext, args []string) error {
	if err := requireView(cmdCtx, "/saving"); err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("usage: fintrack saving <list|add|rm> [flags]")
	}
	switch args[0] {
	case "list":
		return runSavingList(cmdCtx)
	case "add":
		return runSavingAdd(cmdCtx, args[1:])
	case "rm":
		return runResourceDelete(args[1:], "saving goal", cmdCtx.App.Savings.Delete, cmdCtx)
	default:
		return fmt.Errorf("unknown saving subcommand %q", args[0])
	}
}

func runSavingList(cmdCtx *commandContext) error {
	goals, err := cmdCtx.App.Savings.List(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tGoal\tSaved\tTarget\tProgress"); err != nil {
		return err
	}
	for _, g := range goals {
		if err := writef(w, "%s\t%s\t%.2f\t%.2f\t%.0f%%\n",
			g.ID, g.GoalName, g.CurrentAmount, g.TargetAmount, g.Progress()*100); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runSavingAdd(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("saving add", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var req model.CreateSavingGoalRequest
	fs.StringVar(&req.GoalName, "goal", "", "Goal name")
	fs.Float64Var(&req.TargetAmount, "target", 0, "Target amount")
	fs.Float64Var(&req.CurrentAmount, "current", 0, "Amount already saved")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cmdCtx.App.Savings.Create(cmdCtx.Ctx, &req); err != nil {
		return err
	}
	return writeln(os.Stdout, "Savings goal saved.")
}

// runResourceDelete handles the shared "rm --id" shape of the resource
// subcommands.
func runResourceDelete(args []string, label string, deleteFn func(ctx context.Context, id string) error, cmdCtx *commandContext) error {
	fs := flag.NewFlagSet(label+" rm", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	id := fs.String("id", "", "ID to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("--id is required")
	}

	if err := deleteFn(cmdCtx.Ctx, *id); err != nil {
		return err
	}
	return writef(os.Stdout, "Deleted %s %s.\n", label, *id)
}
