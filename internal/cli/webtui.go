package cli

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"portfolio-cli/internal/webtui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWebTUICmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "webtui",
		Short: "Run the terminal dashboard in your browser (PTY + WebSocket)",
		Long: strings.TrimSpace(`
Run the terminal dashboard over the web via a server-side PTY and a browser
terminal emulator.

Each browser tab starts its own dashboard process on the server. There is no
authentication; keep the default loopback address.
`),
		Example: strings.TrimSpace(`
portfolio webtui --addr 127.0.0.1:3334
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			listenAddr := strings.TrimSpace(addr)
			if listenAddr == "" {
				listenAddr = app.cfg.WebTUI.Addr
			}
			if listenAddr == "" {
				return writeErr(cmd, errors.New("webtui: missing --addr"))
			}

			log, err := app.logger(true)
			if err != nil {
				return writeErr(cmd, err)
			}

			srv, err := webtui.NewServer(webtui.ServerConfig{
				Addr:   listenAddr,
				Args:   app.childArgs(),
				Logger: log,
			})
			if err != nil {
				return writeErr(cmd, err)
			}

			_ = writeOut(cmd, app, envelope{
				Data: map[string]any{
					"addr":      srv.Addr(),
					"persist":   app.cfg.Persist,
					"startedAt": time.Now().UTC().Format(time.RFC3339Nano),
				},
				Hints: []string{"open http://" + srv.Addr()},
			})

			fmt.Fprintf(cmd.ErrOrStderr(), "portfolio webtui running at http://%s\n", srv.Addr())
			log.Info("webtui listening", zap.String("addr", srv.Addr()))
			return http.ListenAndServe(srv.Addr(), srv.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Bind address (host:port or :port; default from config)")
	return cmd
}

// childArgs forwards the effective settings to each dashboard subprocess.
func (a *App) childArgs() []string {
	args := []string{"--theme", a.cfg.Theme}
	if a.cfg.Persist {
		args = append(args, "--persist")
		if a.cfg.DataDir != "" {
			args = append(args, "--dir", a.cfg.DataDir)
		}
	}
	if a.cfg.LogFile != "" {
		args = append(args, "--log-file", a.cfg.LogFile, "--log-level", a.cfg.LogLevel)
	}
	return args
}
