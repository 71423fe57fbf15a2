// Package handler: export.go implements GET /trips/{tripId}/export.
// Returns every scheduled event of a trip as a flat table.
// Supports ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/handler/gen"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "day_number", "position", "event_id", "title",
	"start_time", "end_time", "location", "address", "latitude", "longitude",
	"duration",
}

// GetExport handles GET /trips/{tripId}/export.
func (s *Server) GetExport(ctx context.Context, req gen.GetExportRequestObject) (gen.GetExportResponseObject, error) {
	format := gen.Json
	if req.Params.Format != nil {
		format = *req.Params.Format
	}
	if format != gen.Json && format != gen.Csv {
		return gen.GetExport400JSONResponse(requestBody("invalid format: must be json or csv")), nil
	}

	rows, err := s.export.Export(ctx, req.TripId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetExport404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	if format == gen.Csv {
		return buildCSVResponse(rows), nil
	}

	out := make(gen.GetExport200JSONResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, exportRowToResponse(row))
	}
	return out, nil
}

// buildCSVResponse encodes rows as CSV with a header line and wraps them in
// the streaming response type.
func buildCSVResponse(rows []domain.ExportRow) gen.GetExport200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		w.Write(exportRowToRecord(row))
	}
	w.Flush()

	return gen.GetExport200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}
}

// exportRowToResponse maps a domain.ExportRow to the generated gen.ExportRow type.
// Empty optional strings become nil pointers (omitempty in JSON).
func exportRowToResponse(r domain.ExportRow) gen.ExportRow {
	tripID, _ := uuid.Parse(r.TripID)
	eventID, _ := uuid.Parse(r.EventID)
	return gen.ExportRow{
		TripId:    tripID,
		TripName:  r.TripName,
		DayNumber: r.DayNumber,
		Position:  r.Position,
		EventId:   eventID,
		Title:     r.Title,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Location:  r.Location,
		Address:   nilIfEmpty(r.Address),
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Duration:  nilIfEmpty(r.Duration),
	}
}

// exportRowToRecord encodes a domain.ExportRow as a flat string slice in
// csvHeaders order.
func exportRowToRecord(r domain.ExportRow) []string {
	return []string{
		r.TripID,
		r.TripName,
		strconv.Itoa(r.DayNumber),
		strconv.Itoa(r.Position),
		r.EventID,
		r.Title,
		r.StartTime,
		r.EndTime,
		r.Location,
		r.Address,
		strconv.FormatFloat(r.Latitude, 'f', -1, 64),
		strconv.FormatFloat(r.Longitude, 'f', -1, 64),
		r.Duration,
	}
}
