// ABOUTME: Web server subcommand
// ABOUTME: Starts the public profile server
package cli

import (
	"flag"

	"github.com/paradiigm/cardstack/store"
	"github.com/paradiigm/cardstack/web"
)

// WebCommand starts the public profile web server.
func WebCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("web", flag.ExitOnError)
	port := fs.Int("port", 8080, "Port to listen on")
	_ = fs.Parse(args)

	server, err := web.NewServer(s)
	if err != nil {
		return err
	}
	return server.Start(*port)
}
