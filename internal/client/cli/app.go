// Package cli implements the sessionctl commands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/client"
	"github.com/dmitrijs2005/sessionkeeper/internal/client/config"
	urfave "github.com/urfave/cli/v3"

	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
)

// SessionAPI is the part of client.GRPCClient the commands use.
type SessionAPI interface {
	Register(ctx context.Context, email, name, password string) (*client.Session, error)
	Login(ctx context.Context, email, password string) (*client.Session, error)
	Refresh(ctx context.Context) (*client.Session, error)
	Whoami(ctx context.Context) (*pb.WhoamiResponse, error)
	Logout(ctx context.Context) error
	LogoutAll(ctx context.Context) (int, error)
	SetRole(ctx context.Context, userID, role string) error
	Close() error
}

type App struct {
	reader *bufio.Reader
	out    io.Writer
	dial   func(cfg *config.Config) (SessionAPI, error)
}

func NewApp(in io.Reader, out io.Writer) *App {
	return &App{
		reader: bufio.NewReader(in),
		out:    out,
		dial: func(cfg *config.Config) (SessionAPI, error) {
			return client.NewGRPCClient(cfg.ServerAddr, client.NewTokenStore(cfg.TokenFile))
		},
	}
}

// loadConfig applies command-line overrides on top of the config file.
func loadConfig(cmd *urfave.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("addr") {
		cfg.ServerAddr = cmd.String("addr")
	}
	if cmd.IsSet("token-file") {
		cfg.TokenFile = cmd.String("token-file")
	}
	if cmd.IsSet("timeout") {
		cfg.Timeout = cmd.Duration("timeout")
	}
	return cfg, nil
}

// withClient runs fn with a connected client and the configured timeout.
func (a *App) withClient(ctx context.Context, cmd *urfave.Command, fn func(context.Context, SessionAPI) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	c, err := a.dial(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	return fn(ctx, c)
}

func (a *App) credentials(cmd *urfave.Command) (string, []byte, error) {
	email := cmd.String("email")
	if email == "" {
		var err error
		if email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
			return "", nil, err
		}
	}
	pw, err := GetPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	return email, pw, nil
}

func (a *App) printSession(s *client.Session) {
	fmt.Fprintf(a.out, "user:            %s (%s)\n", s.UserID, s.Role)
	fmt.Fprintf(a.out, "access expires:  %s\n", s.AccessExpiresAt.Local().Format(time.RFC3339))
	fmt.Fprintf(a.out, "refresh expires: %s\n", s.RefreshExpiresAt.Local().Format(time.RFC3339))
}

func emailFlag() urfave.Flag {
	return &urfave.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "account email (prompted when empty)"}
}

// Command builds the sessionctl command tree.
func (a *App) Command() *urfave.Command {
	return &urfave.Command{
		Name:      "sessionctl",
		Usage:     "Log in to sessionkeeper and manage sessions",
		Writer:    a.out,
		ErrWriter: a.out,
		Flags: []urfave.Flag{
			&urfave.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "JSON config file"},
			&urfave.StringFlag{Name: "addr", Aliases: []string{"a"}, Usage: "server address (host:port)"},
			&urfave.StringFlag{Name: "token-file", Usage: "where the session tokens are stored"},
			&urfave.DurationFlag{Name: "timeout", Usage: "timeout per command"},
		},
		Commands: []*urfave.Command{
			{
				Name:  "register",
				Usage: "Create an account and log in",
				Flags: []urfave.Flag{
					emailFlag(),
					&urfave.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "display name"},
				},
				Action: func(ctx context.Context, cmd *urfave.Command) error {
					email, pw, err := a.credentials(cmd)
					if err != nil {
						return err
					}
					defer clear(pw)

					return a.withClient(ctx, cmd, func(ctx context.Context, c SessionAPI) error {
						s, err := c.Register(ctx, email, cmd.String("name"), string(pw))
						if err != nil {
							return err
						}
						fmt.Fprintln(a.out, "registered")
						a.printSession(s)
						return nil
					})
				},
			},
			{
				Name:  "login",
				Usage: "Log in and store the session tokens",
				Flags: []urfave.Flag{emailFlag()},
				Action: func(ctx context.Context, cmd *urfave.Command) error {
					email, pw, err := a.credentials(cmd)
					if err != nil {
						return err
					}
					defer clear(pw)

					return a.withClient(ctx, cmd, func(ctx context.Context, c SessionAPI) error {
						s, err := c.Login(ctx, email, string(pw))
						if err != nil {
							return err
						}
						fmt.Fprintln(a.out, "logged in")
						a.printSession(s)
						return nil
					})
				},
			},
			{
				Name:  "whoami",
				Usage: "Show the current identity",
				Action: func(ctx context.Context, cmd *urfave.Command) error {
					return a.withClient(ctx, cmd, func(ctx context.Context, c SessionAPI) error {
						me, err := c.Whoami(ctx)
						if err != nil {
							return err
						}
						fmt.Fprintf(a.out, "id:    %s\nemail: %s\nname:  %s\nrole:  %s\n", me.GetUserId(), me.GetEmail(), me.GetName(), me.GetRole())
						return nil
					})
				},
			},
			{
				Name:  "refresh",
				Usage: "Rotate the stored refresh token",
				Action: func(ctx context.Context, cmd *urfave.Command) error {
					return a.withClient(ctx, cmd, func(ctx context.Context, c SessionAPI) error {
						s, err := c.Refresh(ctx)
						if err != nil {
							return err
						}
						fmt.Fprintln(a.out, "refreshed")
						a.printSession(s)
						return nil
					})
				},
			},
			{
				Name:  "logout",
				Usage: "Close the current session",
				Action: func(ctx context.Context, cmd *urfave.Command) error {
					return a.withClient(ctx, cmd, func(ctx context.Context, c SessionAPI) error {
						if err := c.Logout(ctx); err != nil {
							return err
						}
						fmt.Fprintln(a.out, "logged out")
						return nil
					})
				},
			},
			{
				Name:  "logout-all",
				Usage: "Close every session of the current user",
				Action: func(ctx context.Context, cmd *urfave.Command) error {
					return a.withClient(ctx, cmd, func(ctx context.Context, c SessionAPI) error {
						n, err := c.LogoutAll(ctx)
						if err != nil {
							return err
						}
						fmt.Fprintf(a.out, "logged out of %d session(s)\n", n)
						return nil
					})
				},
			},
			{
				Name:      "set-role",
				Usage:     "Change a user's role (admin only)",
				ArgsUsage: "<user-id> <user|admin>",
				Action: func(ctx context.Context, cmd *urfave.Command) error {
					if cmd.Args().Len() != 2 {
						return fmt.Errorf("usage: set-role <user-id> <user|admin>")
					}
					userID, role := cmd.Args().Get(0), cmd.Args().Get(1)

					return a.withClient(ctx, cmd, func(ctx context.Context, c SessionAPI) error {
						if err := c.SetRole(ctx, userID, role); err != nil {
							return err
						}
						fmt.Fprintf(a.out, "role of %s set to %s\n", userID, role)
						return nil
					})
				},
			},
		},
	}
}
