// package formatter provides functions to export contact mood reports to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/halcyonlabs/moodsync/internal/emotion"
	"github.com/halcyonlabs/moodsync/internal/models"
	"github.com/halcyonlabs/moodsync/internal/shared"
)

// ExportToCSV converts contact profiles to CSV format with columns: Name, Phone, City, Emotion, Glyph, Known, Fetched
func ExportToCSV(profiles []models.ContactProfile) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Name", "Phone", "City", "Emotion", "Glyph", "Known", "Fetched"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, profile := range profiles {
		record := []string{
			profile.Name,
			profile.Phone,
			profile.City,
			emotion.NameFor(profile.EmotionCode),
			emotion.GlyphFor(profile.EmotionCode),
			strconv.FormatBool(profile.Known),
			profile.FetchedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts contact profiles to a Markdown mood report
func ExportToMarkdown(profiles []models.ContactProfile, title string) ([]byte, error) {
	var buf bytes.Buffer

	if title == "" {
		title = "Mood Report"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Contacts**: %d\n", len(profiles)))
	buf.WriteString(fmt.Sprintf("**Generated**: %s\n\n", time.Now().UTC().Format(time.RFC3339)))

	buf.WriteString("## Contacts\n\n")
	for i, profile := range profiles {
		glyph := emotion.GlyphFor(profile.EmotionCode)
		if !profile.Known {
			buf.WriteString(fmt.Sprintf("%d. %s %s - %s\n", i+1, glyph, profile.Name, models.NotAUserText))
			continue
		}

		cityPart := ""
		if profile.City != "" {
			cityPart = fmt.Sprintf(" (%s)", profile.City)
		}
		buf.WriteString(fmt.Sprintf("%d. %s %s%s - %s\n", i+1, glyph, profile.Name, cityPart, emotion.NameFor(profile.EmotionCode)))

		if profile.ProfileText != "" {
			buf.WriteString(fmt.Sprintf("   > %s\n", profile.ProfileText))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts contact profiles to plain text format
func ExportToText(profiles []models.ContactProfile) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Contacts: %d\n\n", len(profiles)))

	for i, profile := range profiles {
		glyph := emotion.GlyphFor(profile.EmotionCode)
		if !profile.Known {
			buf.WriteString(fmt.Sprintf("%d. %s %s (%s)\n", i+1, glyph, profile.Name, models.NotAUserText))
			continue
		}
		buf.WriteString(fmt.Sprintf("%d. %s %s - %s\n", i+1, glyph, profile.Name, emotion.NameFor(profile.EmotionCode)))
	}

	return buf.Bytes(), nil
}

// ToJSON generates a JSON representation of contact profiles
func ToJSON(profiles []models.ContactProfile) ([]byte, error) {
	return shared.MarshalJSON(profiles, true)
}

// WriteReport exports contact profiles to the given format and writes the result to path.
//
// Supported formats: csv, markdown, txt, json (the default).
// Returns the path written.
func WriteReport(profiles []models.ContactProfile, format, path string) (string, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case "csv":
		data, err = ExportToCSV(profiles)
	case "markdown":
		data, err = ExportToMarkdown(profiles, "")
	case "txt":
		data, err = ExportToText(profiles)
	case "json", "":
		data, err = ToJSON(profiles)
	default:
		return "", fmt.Errorf("%w: unknown report format %q", shared.ErrInvalidArgument, format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate %s report: %w", format, err)
	}

	if path == "" {
		path = fmt.Sprintf("mood_report_%d.%s", time.Now().Unix(), reportExtension(format))
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

func reportExtension(format string) string {
	switch format {
	case "csv":
		return "csv"
	case "markdown":
		return "md"
	case "txt":
		return "txt"
	default:
		return "json"
	}
}
