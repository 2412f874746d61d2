package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fintrack/fintrack-go/internal/domain/model"
)

func runBlog(cmdCtx *commandContext, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: fintrack blog <list|add|edit|rm> [flags]")
	}
	switch args[0] {
	case "list":
		// Reading the blog is public.
		return runBlogList(cmdCtx)
	case "add":
		return runBlogAdd(cmdCtx, args[1:])
	case "edit":
		return runBlogEdit(cmdCtx, args[1:])
	case "rm":
		if err := requireView(cmdCtx, "/profile"); err != nil {
			return err
		}
		return runResourceDelete(args[1:], "blog post", cmdCtx.App.Blog.Delete, cmdCtx)
	default:
		return fmt.Errorf("unknown blog subcommand %q", args[0])
	}
}

func runBlogList(cmdCtx *commandContext) error {
	posts, err := cmdCtx.App.Blog.List(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tTitle\tAuthor\tCreated"); err != nil {
		return err
	}
	for _, p := range posts {
		if err := writef(w, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Author, p.CreatedAt); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runBlogAdd(cmdCtx *commandContext, args []string) error {
	if err := requireView(cmdCtx, "/profile"); err != nil {
		return err
	}

	fs := flag.NewFlagSet("blog add", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var req model.BlogPostRequest
	fs.StringVar(&req.Title, "title", "", "Post title")
	fs.StringVar(&req.Content, "content", "", "Post body")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cmdCtx.App.Blog.Create(cmdCtx.Ctx, &req); err != nil {
		return err
	}
	return writeln(os.Stdout, "Post published.")
}

func runBlogEdit(cmdCtx *commandContext, args []string) error {
	if err := requireView(cmdCtx, "/profile"); err != nil {
		return err
	}

	fs := flag.NewFlagSet("blog edit", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	id := fs.String("id", "", "Post ID")
	var req model.BlogPostRequest
	fs.StringVar(&req.Title, "title", "", "New title")
	fs.StringVar(&req.Content, "content", "", "New body")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("--id is required")
	}

	if err := cmdCtx.App.Blog.Update(cmdCtx.Ctx, *id, &req); err != nil {
		return err
	}
	return writeln(os.Stdout, "Post updated.")
}
