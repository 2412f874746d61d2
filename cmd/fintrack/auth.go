package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

func runLogin(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("--email is required")
	}
	if *password == "" {
		pw, err := promptLine("Password: ")
		if err != nil {
			return err
		}
		*password = pw
	}

	user, err := cmdCtx.App.Auth.Login(cmdCtx.Ctx, *email, *password)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "Signed in as %s (%s)\n", user.Name, user.Email)
}

func runRegister(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	name := fs.String("name", "", "Display name")
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" {
		return errors.New("--name and --email are required")
	}
	if *password == "" {
		pw, err := promptLine("Password: ")
		if err != nil {
			return err
		}
		*password = pw
	}

	user, err := cmdCtx.App.Auth.Register(cmdCtx.Ctx, *name, *email, *password)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "Account created; signed in as %s (%s)\n", user.Name, user.Email)
}

func runGoogleLogin(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("google-login", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	rawToken := fs.String("id-token", "", "Use an already obtained Google ID token instead of the browser flow")
	if err := fs.Parse(args); err != nil {
		return err
	}

	idToken := *rawToken
	if idToken == "" {
		if cmdCtx.App.GoogleFlow == nil {
			return errors.New("google sign-in is not configured; set GOOGLE_CLIENT_ID")
		}
		obtained, err := cmdCtx.App.GoogleFlow.Obtain(cmdCtx.Ctx, func(authURL string) {
			_ = writef(os.Stdout, "Open this URL in your browser to sign in:\n\n  %s\n\n", authURL)
		})
		if err != nil {
			return fmt.Errorf("google sign-in flow: %w", err)
		}
		idToken = obtained
	}

	user, err := cmdCtx.App.Auth.GoogleLogin(cmdCtx.Ctx, idToken)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "Signed in as %s (%s)\n", user.Name, user.Email)
}

func runLogout(cmdCtx *commandContext, _ []string) error {
	if err := cmdCtx.App.Auth.Logout(cmdCtx.Ctx); err != nil {
		return err
	}
	return writeln(os.Stdout, "Signed out.")
}

func runWhoami(cmdCtx *commandContext, _ []string) error {
	sess := cmdCtx.App.Sessions.Current()
	if !sess.IsAuthenticated() {
		return writeln(os.Stdout, "Not signed in.")
	}
	return writef(os.Stdout, "%s <%s> role=%s\n", sess.User.Name, sess.User.Email, sess.User.Role)
}

func runForgotPassword(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("forgot-password", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email := fs.String("email", "", "Account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("--email is required")
	}

	msg, err := cmdCtx.App.Auth.ForgotPassword(cmdCtx.Ctx, *email)
	if err != nil {
		return err
	}
	return writeln(os.Stdout, msg)
}

func runVerifyOTP(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("verify-otp", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email := fs.String("email", "", "Account email")
	otp := fs.String("otp", "", "One-time code from the reset email")
	newPassword := fs.String("new-password", "", "New password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *otp == "" {
		return errors.New("--email and --otp are required")
	}
	if *newPassword == "" {
		pw, err := promptLine("New password: ")
		if err != nil {
			return err
		}
		*newPassword = pw
	}

	msg, err := cmdCtx.App.Auth.VerifyOTP(cmdCtx.Ctx, *email, *otp, *newPassword)
	if err != nil {
		return err
	}
	return writeln(os.Stdout, msg)
}

func promptLine(prompt string) (string, error) {
	if err := writef(os.Stdout, "%s", prompt); err != nil {
		return "", err
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
