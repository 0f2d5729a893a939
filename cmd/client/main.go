package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/avoronov/photoboard/internal/board"
	"github.com/avoronov/photoboard/internal/client/api"
	"github.com/avoronov/photoboard/internal/client/term"
	"github.com/avoronov/photoboard/internal/config"
	"github.com/avoronov/photoboard/internal/forms"
	"github.com/avoronov/photoboard/internal/logger"
	"go.uber.org/zap"
)

var (
	version   string
	buildDate string
)

// printFieldErrors reports every invalid field of a form to the user.
func printFieldErrors(f *forms.Form) {
	for _, fld := range f.Fields {
		if fld.ErrorText() != "" {
			fmt.Printf("  %s: %s\n", fld.Name, fld.ErrorText())
		}
	}
}

// submitReady feeds the given values into the form and reports whether its
// submit control ended up enabled, printing field errors when it did not.
func submitReady(f *forms.Form, values map[string]string) bool {
	for name, value := range values {
		f.Input(name, value)
	}
	if f.Submit.Disabled {
		printFieldErrors(f)
		return false
	}
	return true
}

// repl runs the interactive shell loop driving the gallery.
func repl(r *board.Reconciler, f board.Forms) {
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		fmt.Print("photoboard> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, list, profile, edit <name>; <about>, avatar <url>, add <title> <url>, like <id>, preview <id>, delete <id>, stats, exit")
		case "list":
			for _, c := range r.Cards().Cards() {
				fmt.Printf("[%s] %s (%s) — %d likes\n", c.ID, c.Name, c.Link, c.LikeCount())
			}
		case "profile":
			u := r.Session().User
			fmt.Printf("%s — %s\n%s\n", u.Name, u.About, u.Avatar)
		case "edit":
			rest := strings.TrimSpace(strings.TrimPrefix(line, "edit"))
			parts := strings.SplitN(rest, ";", 2)
			if len(parts) < 2 {
				fmt.Println("Usage: edit <name>; <about>")
				continue
			}
			name := strings.TrimSpace(parts[0])
			about := strings.TrimSpace(parts[1])
			if !submitReady(f.Profile, map[string]string{"name": name, "description": about}) {
				continue
			}
			if err := r.UpdateProfile(ctx, name, about); err != nil {
				fmt.Println("edit failed:", err)
			}
		case "avatar":
			if len(args) < 2 {
				fmt.Println("Usage: avatar <url>")
				continue
			}
			if !submitReady(f.Avatar, map[string]string{"avatar-link": args[1]}) {
				continue
			}
			if err := r.UpdateAvatar(ctx, args[1]); err != nil {
				fmt.Println("avatar failed:", err)
			}
		case "add":
			if len(args) < 3 {
				fmt.Println("Usage: add <title> <url>")
				continue
			}
			link := args[len(args)-1]
			title := strings.Join(args[1:len(args)-1], " ")
			if !submitReady(f.NewCard, map[string]string{"place-name": title, "link": link}) {
				continue
			}
			if err := r.CreateCard(ctx, title, link); err != nil {
				fmt.Println("add failed:", err)
			}
		case "like":
			if len(args) < 2 {
				fmt.Println("Usage: like <id>")
				continue
			}
			if err := r.ToggleLike(ctx, args[1]); err != nil {
				fmt.Println("like failed:", err)
			}
		case "preview":
			if len(args) < 2 {
				fmt.Println("Usage: preview <id>")
				continue
			}
			r.Preview(args[1])
		case "delete":
			if len(args) < 2 {
				fmt.Println("Usage: delete <id>")
				continue
			}
			r.RequestDelete(args[1])
			if r.Session().PendingDelete() == "" {
				fmt.Println("Card not found")
				continue
			}
			fmt.Print("Delete this card? (y/n): ")
			if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "y" {
				r.Session().ClearPendingDelete()
				continue
			}
			if err := r.ConfirmDelete(ctx); err != nil {
				fmt.Println("delete failed:", err)
			}
		case "stats":
			if _, err := r.ShowStats(ctx); err != nil {
				fmt.Println("stats failed:", err)
			}
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

// main wires the API client, forms, and reconciler, bootstraps the session,
// and hands control to the shell.
func main() {
	options := config.Parse()

	if options.Token == "" {
		log.Fatal("please provide -token or GALLERY_TOKEN")
	}

	appLog := logger.New()
	defer func() { _ = appLog.Log.Sync() }()
	if err := appLog.Init("Info"); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Photoboard Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)

	f, err := term.NewForms()
	if err != nil {
		appLog.Log.Fatal("form setup", zap.Error(err))
	}

	client := api.New(&http.Client{Timeout: 10 * time.Second}, options.BaseURL, options.Token)
	view := term.NewView(os.Stdout)
	session := &board.Session{}
	reconciler := board.NewReconciler(client, view, session, f, appLog.Log)

	if err := reconciler.Bootstrap(context.Background()); err != nil {
		appLog.Log.Fatal("bootstrap", zap.Error(err))
	}

	repl(reconciler, f)
}
