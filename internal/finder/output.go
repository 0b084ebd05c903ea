// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package finder

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperwatch/pkg/types"
)

// FormatText writes rec as a human-readable block to w. A nil record prints
// an explicit "no result" line.
func FormatText(rec *types.PaperRecord, w io.Writer) {
	if rec == nil {
		fmt.Fprintln(w, "No papers found in the search window.")
		return
	}

	fmt.Fprintf(w, "Title:     %s\n", rec.Title)
	if len(rec.Authors) > 0 {
		fmt.Fprintf(w, "Authors:   %s\n", strings.Join(rec.Authors, ", "))
	}
	if rec.Venue != "" {
		fmt.Fprintf(w, "Venue:     %s\n", rec.Venue)
	}
	if rec.PublicationDate != "" {
		fmt.Fprintf(w, "Published: %s\n", rec.PublicationDate)
	} else if rec.Year > 0 {
		fmt.Fprintf(w, "Year:      %d\n", rec.Year)
	}
	if rec.URL != "" {
		fmt.Fprintf(w, "URL:       %s\n", rec.URL)
	}
}

// FormatJSON writes rec as indented JSON to w. A nil record encodes as null.
func FormatJSON(rec *types.PaperRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

// FormatYAML writes rec as YAML to w. A nil record encodes as null.
func FormatYAML(rec *types.PaperRecord, w io.Writer) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}
	_, err = w.Write(data)
	return err
}
