package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hbd/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagNoVisits    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the greeting over SSH",
	Long: `Start an SSH server that shows the greeting to everyone who connects.

Each SSH connection gets its own fireworks. Visits are recorded in the
visit log (see 'hbd visits') unless --no-visits is set.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hbd/host_key

Examples:
  hbd serve                            # Listen on :23234 with auto-generated key
  hbd serve --addr :2222               # Listen on port 2222
  hbd serve --host-key ./my_host_key   # Use specific host key
  hbd serve --db ./visits.db           # Use specific visit log

Viewers connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "addr", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagNoVisits, "no-visits", false, "Do not record visits")
}

func runServe(_ *cobra.Command, _ []string) error {
	setup, err := loadGreeting(0, 0)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("hbd-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	if flagNoVisits {
		cfg.DBPath = ""
	}
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Runtime = setup.runtime
	cfg.Card = setup.config.Card()
	cfg.Gate = setup.gate
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Serving %q over SSH on %s\n", setup.config.Title, server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
