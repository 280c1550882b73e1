package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/piresc/ridermap/internal/pkg/models"
)

// NormalizeReport counts the rows the normalizer kept and dropped
type NormalizeReport struct {
	InputRows   int `json:"input_rows"`
	DroppedRows int `json:"dropped_rows"`
}

// Normalize coerces each record into an order. Rows without an Order ID or
// with coordinates that are not finite numbers are dropped and counted.
func Normalize(table *Table) ([]models.Order, NormalizeReport) {
	report := NormalizeReport{InputRows: len(table.Rows)}
	orders := make([]models.Order, 0, len(table.Rows))

	for _, record := range table.Rows {
		order, ok := normalizeRecord(record)
		if !ok {
			report.DroppedRows++
			continue
		}
		orders = append(orders, order)
	}
	return orders, report
}

func normalizeRecord(record Record) (models.Order, bool) {
	orderID := cellText(record[ColumnOrderID])
	if orderID == "" {
		return models.Order{}, false
	}
	lat, ok := coerceFloat(record[ColumnLatitude])
	if !ok {
		return models.Order{}, false
	}
	lon, ok := coerceFloat(record[ColumnLongitude])
	if !ok {
		return models.Order{}, false
	}

	timeCheck := record[ColumnTimeCheck]
	return models.Order{
		OrderID:         orderID,
		Latitude:        lat,
		Longitude:       lon,
		RiderName:       cellText(record[ColumnRider]),
		SLAStatus:       cellText(record[ColumnSLAStatus]),
		TimeCheckRaw:    cellText(timeCheck),
		TimeCheckStatus: ClassifyTimeCheck(timeCheck),
		DPTime:          NormalizeClock(record[ColumnDPTime]),
		SLATime:         NormalizeClock(record[ColumnSLA]),
	}, true
}

// coerceFloat accepts numbers and numeric strings that are finite
func coerceFloat(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// cellText is the trimmed string form of a cell, empty when missing
func cellText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		if v.Year() == serialEpoch.Year() && v.YearDay() == serialEpoch.YearDay() {
			return v.Format("15:04:05")
		}
		return v.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}
