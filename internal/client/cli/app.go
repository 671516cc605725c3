// Package cli implements the interactive terminal client: register, login,
// and whoami against a running user service.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/groovestream/users/internal/client"
	"github.com/groovestream/users/internal/common"
)

type App struct {
	client *client.Client
	in     *bufio.Reader
	out    io.Writer
}

func NewApp(serverURL string) *App {
	return &App{
		client: client.New(serverURL),
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run dispatches a single command and returns when it completes.
func (a *App) Run(ctx context.Context, command string) error {
	switch command {
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "whoami":
		return a.whoami(ctx)
	default:
		return fmt.Errorf("unknown command %q (expected register, login or whoami)", command)
	}
}

func (a *App) register(ctx context.Context) error {
	name, err := GetSimpleText(a.in, "Enter display name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.client.Register(ctx, name, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s (id=%s)\nToken: %s\n", res.User.Email, res.User.ID, res.Token)
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := GetSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\nToken: %s\n", res.User.Email, res.Token)
	return nil
}

func (a *App) whoami(ctx context.Context) error {
	token, err := GetSimpleText(a.in, "Paste session token", a.out)
	if err != nil {
		return err
	}

	user, err := a.client.Me(ctx, token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s <%s> role=%s id=%s\n", user.Name, user.Email, user.Role, user.ID)
	return nil
}
