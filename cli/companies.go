// ABOUTME: Company CLI commands
// ABOUTME: Human-friendly commands for managing companies
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/store"
)

// AddCompanyCommand creates a new company.
func AddCompanyCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-company", flag.ExitOnError)
	name := fs.String("name", "", "Company name (required)")
	description := fs.String("description", "", "Description")
	website := fs.String("website", "", "Website URL")
	location := fs.String("location", "", "Location")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	company := s.CreateCompany(models.Company{
		Name:        *name,
		Description: *description,
		Website:     *website,
		Location:    *location,
	})

	fmt.Printf("Created company: %s (%s)\n", company.Name, company.ID)
	return nil
}

// ListCompaniesCommand lists all companies with their contact counts.
func ListCompaniesCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-companies", flag.ExitOnError)
	hidden := fs.Bool("hidden", false, "Include archived companies")
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tCONTACTS\tFAVORITE")

	count := 0
	for _, c := range s.Companies() {
		if c.Hidden && !*hidden {
			continue
		}

		fav := ""
		if c.IsFavorite {
			fav = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			c.ID, c.Name, c.Location, len(s.ContactsByCompanyID(c.ID)), fav)
		count++
	}

	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d company(ies)\n", count)
	return nil
}

// DeleteCompanyCommand deletes a company. Its contacts are kept but
// detached from the company.
func DeleteCompanyCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("company ID is required")
	}

	id := args[0]
	company, ok := s.CompanyByID(id)
	if !ok {
		return fmt.Errorf("company not found: %s", id)
	}

	detached := len(s.ContactsByCompanyID(id))
	s.DeleteCompany(id)
	fmt.Printf("Deleted company: %s (%d contact(s) detached)\n", company.Name, detached)
	return nil
}
