package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jobdeck/jobdeck/internal/domain/model"
)

func printCategoryCounts(counts []model.CategoryCount) error {
	if err := writef(os.Stdout, "\nPostings by Category\n"); err != nil {
		return fmt.Errorf("write category header: %w", err)
	}
	if len(counts) == 0 {
		if err := writeln(os.Stdout, "(no postings)"); err != nil {
			return fmt.Errorf("write empty categories: %w", err)
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "Category\tCount"); err != nil {
		return fmt.Errorf("write category columns: %w", err)
	}
	total := 0
	for _, c := range counts {
		total += c.Count
		if err := writef(w, "%s\t%d\n", c.Category, c.Count); err != nil {
			return fmt.Errorf("write category row %q: %w", c.Category, err)
		}
	}
	if err := writef(w, "Total\t%d\n", total); err != nil {
		return fmt.Errorf("write category total: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush category table: %w", err)
	}
	return nil
}

func printCompanyDirectory(companies []model.CompanyListing) error {
	if err := writef(os.Stdout, "\nCompany Directory\n"); err != nil {
		return fmt.Errorf("write company header: %w", err)
	}
	if len(companies) == 0 {
		if err := writeln(os.Stdout, "(no companies)"); err != nil {
			return fmt.Errorf("write empty companies: %w", err)
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "Company\tOpen Postings\tLogo"); err != nil {
		return fmt.Errorf("write company columns: %w", err)
	}
	for _, c := range companies {
		if err := writef(w, "%s\t%d\t%s\n", c.Name, c.JobCount, c.Logo); err != nil {
			return fmt.Errorf("write company row %q: %w", c.Name, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush company table: %w", err)
	}
	return nil
}
