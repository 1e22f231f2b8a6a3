package cli

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/dmitrijs2005/myrecords/internal/client/codec"
	"github.com/dmitrijs2005/myrecords/internal/client/form"
	"github.com/dmitrijs2005/myrecords/internal/client/models"
	"github.com/dmitrijs2005/myrecords/internal/client/views"
)

// recordsLister is the part of RecordsView the table needs.
type recordsLister interface {
	Records() []models.Record
	FormatValue(models.Amount) string
}

func renderRecords(w io.Writer, v recordsLister) {
	records := v.Records()
	if len(records) == 0 {
		fmt.Fprintln(w, "No records yet. Use 'new' to add one.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDESCRIPTION\tDUE DATE\tVALUE\tPAID\tSTATUS")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Description, r.DueDate, v.FormatValue(r.Value), yesNo(r.PaidOut), r.Status)
	}
	_ = tw.Flush()
}

func renderProfile(w io.Writer, u *models.UserProfile, phone codec.Phone) {
	if u == nil {
		fmt.Fprintln(w, "No profile loaded.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\t%s %s\n", u.FirstName, u.LastName)
	fmt.Fprintf(tw, "Email\t%s\n", u.Email)
	fmt.Fprintf(tw, "CPF\t%s\n", codec.CPF{}.Format(u.CPF))
	fmt.Fprintf(tw, "Phone\t%s\n", phone.Format(u.Phone))
	_ = tw.Flush()
}

// renderFormErrors prints field errors in prompt order, then any errors
// for names the form does not prompt for.
func renderFormErrors(w io.Writer, fields []form.Field, st views.FormState) {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		seen[f.Name] = true
		if msg := st.Errors[f.Name]; msg != "" {
			fmt.Fprintf(w, "  %s: %s\n", f.Label, msg)
		}
	}

	var rest []string
	for name := range st.Errors {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	for _, name := range rest {
		fmt.Fprintf(w, "  %s: %s\n", name, st.Errors[name])
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
