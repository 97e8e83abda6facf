package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/dish4u/apiclient"
	"github.com/danielhkuo/dish4u/auth"
	"github.com/danielhkuo/dish4u/cliparse"
	"github.com/danielhkuo/dish4u/db"
	"github.com/danielhkuo/dish4u/middleware"
)

const usage = `usage: dish4u [global flags] <command> [command flags]

commands:
  checkout     -item id:name:price:qty ... -first -last -email -address -phone
  confirm      [-order-id ID]
  contact      -name -email -subject -message
  admin login  -token TOKEN
  admin logout
  admin orders
  admin status ORDER_ID STATUS
  admin add-item -name -description -price -category -image PATH
  stub-server  [-p PORT]
`

// errUsage marks errors caused by bad command-line input
var errUsage = errors.New("usage error")

// app bundles what every command needs
type app struct {
	cfg    cliparse.Config
	client *apiclient.Client
	store  *db.Store
	out    io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, rest, err := cliparse.ParseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	cliparse.SetupLogger(cfg, stderr)

	if len(rest) == 0 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	// stub-server needs no local state
	if rest[0] == "stub-server" {
		if err := runStubServer(ctx, cfg, rest[1:]); err != nil {
			slog.Error("stub server failed", "error", err)
			return 1
		}
		return 0
	}

	conn, err := db.Open(cfg.StateDriver, cfg.StateDSN)
	if err != nil {
		slog.Error("state store unavailable", "driver", cfg.StateDriver, "error", err)
		fmt.Fprintln(stderr, "Could not open local state:", err)
		return 1
	}
	defer conn.Close()

	a := newApp(cfg, conn, stdout)

	err = a.dispatch(ctx, rest)
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, err)
			fmt.Fprint(stderr, usage)
			return 1
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func newApp(cfg cliparse.Config, conn *sql.DB, out io.Writer) *app {
	return &app{
		cfg:    cfg,
		client: apiclient.New(cfg.APIBaseURL, middleware.NewHTTPClient(cfg.HTTPTimeout)),
		store:  db.NewStore(conn, cfg.StateDriver),
		out:    out,
	}
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	switch args[0] {
	case "checkout":
		return a.checkout(ctx, args[1:])
	case "confirm":
		return a.confirm(ctx, args[1:])
	case "contact":
		return a.contact(ctx, args[1:])
	case "admin":
		if len(args) < 2 {
			return fmt.Errorf("%w: admin needs a subcommand", errUsage)
		}
		return a.admin(ctx, args[1], args[2:])
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

// session builds the caller's session from the role slot. The admin token
// comes from config, or from the one saved at login.
func (a *app) session(ctx context.Context) (auth.Session, error) {
	token := a.cfg.AdminToken
	if token == "" {
		saved, err := a.store.AdminToken(ctx)
		if err != nil {
			return auth.Session{}, err
		}
		token = saved
	}
	return auth.LoadSession(ctx, a.store, token)
}
