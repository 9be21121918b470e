package records

import (
	"context"
	"fmt"
	"time"

	"cryoflow/models"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsRecorder appends submissions as rows to a Google Sheets range.
type SheetsRecorder struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	writeRange    string
}

// NewSheetsRecorder builds a recorder authenticated with a service-account
// credentials file.
func NewSheetsRecorder(ctx context.Context, credentialsFile, spreadsheetID, writeRange string) (*SheetsRecorder, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("records: init sheets client: %w", err)
	}
	return &SheetsRecorder{
		values:        svc.Spreadsheets.Values,
		spreadsheetID: spreadsheetID,
		writeRange:    writeRange,
	}, nil
}

// Append writes one row: name, email, phone, date (YYYY-MM-DD) and time
// (HH:MM:SS) on the local clock.
func (r *SheetsRecorder) Append(ctx context.Context, sub models.Submission, at time.Time) error {
	row := []interface{}{sub.Name, sub.Email, sub.Phone, at.Format("2006-01-02"), at.Format("15:04:05")}
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := r.values.Append(r.spreadsheetID, r.writeRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("records: append submission row: %w", err)
	}
	return nil
}
