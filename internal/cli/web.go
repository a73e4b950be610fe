package cli

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"portfolio-cli/internal/browser"
	"portfolio-cli/internal/web"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWebCmd(app *App) *cobra.Command {
	var addr string
	var open bool

	cmd := &cobra.Command{
		Use:   "web",
		Short: "Serve the portfolio as server-rendered HTML",
		Long: strings.TrimSpace(`
Serve the five portfolio views as plain HTML forms from a local HTTP server.

All browser tabs share one session: adding a project in one tab shows up in
the others after a reload. With --persist, changes are also saved to SQLite.
`),
		Example: strings.TrimSpace(`
# Serve on the configured address (default 127.0.0.1:3335)
portfolio web

# Pick a port and keep changes
portfolio --persist web --addr :8080 --open=false
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			listenAddr := strings.TrimSpace(addr)
			if listenAddr == "" {
				listenAddr = app.cfg.Web.Addr
			}
			if listenAddr == "" {
				return writeErr(cmd, errors.New("web: missing --addr"))
			}

			log, err := app.logger(true)
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, err := app.openSession(cmd.Context(), log)
			if err != nil {
				return writeErr(cmd, err)
			}
			sess.Dark = app.cfg.Theme != "light"

			srv, err := web.NewServer(web.ServerConfig{Addr: listenAddr, Session: sess, Logger: log})
			if err != nil {
				return writeErr(cmd, err)
			}

			ln, err := net.Listen("tcp", srv.Addr())
			if err != nil {
				return writeErr(cmd, err)
			}

			actualAddr := ln.Addr().String()
			url := "http://" + actualAddr + "/"

			opened := false
			openErr := ""
			if open {
				if err := browser.Open(url); err != nil {
					openErr = err.Error()
				} else {
					opened = true
				}
			}

			hints := []string{}
			if !opened {
				hints = append(hints, "open "+url)
			}

			_ = writeOut(cmd, app, envelope{
				Data: map[string]any{
					"addr":      actualAddr,
					"url":       url,
					"persist":   app.cfg.Persist,
					"opened":    opened,
					"openError": openErr,
					"startedAt": time.Now().UTC().Format(time.RFC3339Nano),
				},
				Hints: hints,
			})

			fmt.Fprintf(cmd.ErrOrStderr(), "portfolio web running at %s\n", url)
			if openErr != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Failed to open browser: %s\n", openErr)
			}
			log.Info("web listening", zap.String("addr", actualAddr), zap.Bool("persist", app.cfg.Persist))

			return http.Serve(ln, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Bind address (host:port or :port; default from config)")
	cmd.Flags().BoolVar(&open, "open", true, "Open the UI in your default browser")
	return cmd
}
