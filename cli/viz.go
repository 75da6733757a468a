// ABOUTME: Visualization CLI commands
// ABOUTME: Handles network graph generation commands
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/paradiigm/cardstack/store"
	"github.com/paradiigm/cardstack/viz"
)

// VizGraphCompanyCommand generates a company org chart.
func VizGraphCompanyCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("viz company", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("company ID required")
	}

	generator := viz.NewGraphGenerator(s)
	dot, err := generator.GenerateCompanyGraph(fs.Arg(0))
	if err != nil {
		return err
	}

	if *output != "" {
		return os.WriteFile(*output, []byte(dot), 0644)
	}

	fmt.Println(dot)
	return nil
}

// VizGraphEventsCommand generates a contact-event network graph.
func VizGraphEventsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("viz events", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	generator := viz.NewGraphGenerator(s)
	dot, err := generator.GenerateEventGraph()
	if err != nil {
		return err
	}

	if *output != "" {
		return os.WriteFile(*output, []byte(dot), 0644)
	}

	fmt.Println(dot)
	return nil
}
