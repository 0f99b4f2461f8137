// Command cli is the operator tool: create users, reset passwords and
// inspect balances without going through the web surface.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mfadel/papertrade/infra"
	infrarepo "github.com/mfadel/papertrade/infra/repository"
	"github.com/mfadel/papertrade/pkg/config"
	usersvc "github.com/mfadel/papertrade/pkg/service/user"
	"github.com/mfadel/papertrade/webapi/common"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}
	cmd, username := os.Args[1], os.Args[2]

	svc, err := newUserService()
	if err != nil {
		color.Red("setup failed: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	switch cmd {
	case "useradd":
		password, err := promptPassword("Password: ")
		if err != nil {
			color.Red("%v", err)
			os.Exit(1)
		}
		u, err := svc.Register(ctx, username, password)
		if err != nil {
			color.Red("failed to create user: %v", err)
			os.Exit(1)
		}
		color.Green("created user %s (id %s) with %s",
			u.Username, u.ID, common.USD(u.Cash))
	case "passwd":
		password, err := promptPassword("New password: ")
		if err != nil {
			color.Red("%v", err)
			os.Exit(1)
		}
		if err := svc.ResetPassword(ctx, username, password); err != nil {
			color.Red("failed to reset password: %v", err)
			os.Exit(1)
		}
		color.Green("password updated for %s", username)
	case "balance":
		u, err := svc.GetByUsername(ctx, username)
		if err != nil {
			color.Red("failed to look up user: %v", err)
			os.Exit(1)
		}
		fmt.Printf("%s: %s\n", u.Username, common.USD(u.Cash))
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("Usage: cli <command> <username>")
	fmt.Println("Commands: useradd, passwd, balance")
}

func newUserService() (*usersvc.Service, error) {
	cfg, err := config.Load(".env")
	if err != nil {
		return nil, err
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, err
	}
	return usersvc.New(
		infrarepo.NewUoW(db),
		cfg.Trading.StartingCash,
		slog.Default(),
	), nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}
