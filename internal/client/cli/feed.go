package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

const dateLayout = "Jan 2, 2006"

func (a *App) Announcements(ctx context.Context) error {
	items, err := a.feed.Announcements(ctx)
	if err != nil {
		a.showError(err)
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No announcements yet.")
		return nil
	}

	for _, it := range items {
		fmt.Fprintf(a.out, "* %s (%s)\n", it.Title, it.CreatedAt.Format(dateLayout))
		if it.Header != "" {
			fmt.Fprintf(a.out, "  %s\n", it.Header)
		}
		if it.Body != "" {
			fmt.Fprintf(a.out, "  %s\n", it.Body)
		}
	}
	return nil
}

func (a *App) Complaints(ctx context.Context) error {
	items, err := a.feed.MyComplaints(ctx)
	if err != nil {
		a.showError(err)
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No complaints filed.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tSTATUS\tFILED\tDESCRIPTION")
	for _, c := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Category, c.Status, c.CreatedAt.Format(dateLayout), c.Description)
	}
	return w.Flush()
}
