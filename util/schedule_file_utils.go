package util

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"openmat-server/models/venue"
)

// ReadScheduleFile loads a raw schedule sheet from disk.
func ReadScheduleFile(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	return string(data), nil
}

// ReadVenuesFromJSON loads a venue list from JSON on disk.
func ReadVenuesFromJSON(filePath string) ([]venue.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var venues []venue.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venues: %w", err)
	}
	return venues, nil
}

// WriteVenuesJSON writes venues as indented JSON.
func WriteVenuesJSON(w io.Writer, venues []venue.Venue) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(venues)
}

// JoinPath joins a directory and file name.
func JoinPath(dir, name string) string {
	return filepath.Join(dir, name)
}

// PrintVenuesPartially prints a one-line summary per venue.
func PrintVenuesPartially(w io.Writer, venues []venue.Venue) {
	fmt.Fprintf(w, "Venues: %d\n", len(venues))
	for _, v := range venues {
		fee := "free"
		if !v.IsFree() {
			fee = fmt.Sprintf("$%.2f", v.Fee)
		}
		fmt.Fprintf(w, "- %s (%s) %s, %d sessions\n", v.Name, v.ID, fee, len(v.Sessions))
	}
}
