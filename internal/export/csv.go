// Package export serializes the admin dashboard's filtered submission list
// to CSV for download.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/homestay/backend/internal/model"
)

// phonePlaceholder is written when a submission has no phone number.
const phonePlaceholder = "N/A"

// csvHeader is the fixed header row of every export.
var csvHeader = []string{"Name", "Email", "Phone", "Message", "Date", "Status"}

// WriteSubmissionsCSV writes the given submissions as CSV: one header row
// plus one row per submission. Every field is wrapped in double quotes with
// embedded quotes doubled, so messages containing commas, quotes or
// newlines survive. The date column is a display string only; the export
// is not meant to round-trip back into the system.
//
// encoding/csv is not used because it quotes fields only when required,
// and the export format quotes every field unconditionally.
func WriteSubmissionsCSV(w io.Writer, subs []*model.Submission) error {
	if err := writeRow(w, csvHeader); err != nil {
		return err
	}
	for _, s := range subs {
		phone := s.Phone
		if phone == "" {
			phone = phonePlaceholder
		}
		row := []string{
			s.Name,
			s.Email,
			phone,
			s.Message,
			s.CreatedAt.Format("Jan 2, 2006"),
			s.Status,
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// Filename returns the download filename for an export taken at t,
// e.g. "submissions-2026-08-29.csv".
func Filename(t time.Time) string {
	return fmt.Sprintf("submissions-%s.csv", t.Format("2006-01-02"))
}

func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}
