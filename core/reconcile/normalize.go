package reconcile

import (
	"strings"

	"nursery-monitor/core/utils"
)

// Ordered alias tables per canonical field. Spreadsheet column names vary by
// sheet revision and editor habit; aliases are tried in order and the first
// non-empty value wins. Extending support for a new column name means adding
// it here, not touching parsing logic.
var (
	dateAliases        = []string{"Tanggal", "tanggal", "date", "tgl", "Date"}
	speciesAliases     = []string{"Bibit", "bibit", "Jenis", "jenis"}
	receivedAliases    = []string{"Masuk", "masuk", "In", "in"}
	shippedAliases     = []string{"Keluar", "keluar", "Out", "out"}
	lostAliases        = []string{"Mati", "mati"}
	sourceAliases      = []string{"Sumber", "sumber", "Asal", "asal"}
	destinationAliases = []string{"Tujuan Bibit", "Tujuan", "tujuan"}
	rowAliases         = []string{"Row Number", "row_number", "row"}
)

// lookup returns the first non-nil, non-empty-string value among the aliases.
func lookup(raw RawRecord, aliases []string) any {
	for _, key := range aliases {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

func stringField(raw RawRecord, aliases []string) string {
	v := lookup(raw, aliases)
	if v == nil {
		return ""
	}
	return strings.TrimSpace(utils.ToString(v))
}

// Normalize maps a raw feed row into its canonical form. sequence is the
// caller-supplied insertion order (1-based); an explicit row number in the
// source takes precedence over it.
//
// A row whose date cannot be parsed yields nil and must be discarded by the
// caller: defaulting the date to "now" would corrupt today's-activity
// detection downstream.
func Normalize(raw RawRecord, sequence int) *InventoryRecord {
	date, ok := ParseDate(lookup(raw, dateAliases))
	if !ok {
		return nil
	}

	rec := &InventoryRecord{
		Date:        date,
		Species:     stringField(raw, speciesAliases),
		Received:    ParseNumber(lookup(raw, receivedAliases)),
		Shipped:     ParseNumber(lookup(raw, shippedAliases)),
		Lost:        ParseNumber(lookup(raw, lostAliases)),
		Source:      stringField(raw, sourceAliases),
		Destination: stringField(raw, destinationAliases),
		Sequence:    sequence,
	}

	if row := utils.ToInt(lookup(raw, rowAliases)); row > 0 {
		rec.Sequence = row
	}

	return rec
}

// NormalizeAll converts a raw payload into the canonical record set, assigning
// 1-based insertion sequence numbers. The second return value is the number
// of rows discarded for an unparseable date.
func NormalizeAll(rows []RawRecord) ([]InventoryRecord, int) {
	records := make([]InventoryRecord, 0, len(rows))
	discarded := 0

	for i, raw := range rows {
		rec := Normalize(raw, i+1)
		if rec == nil {
			discarded++
			continue
		}
		records = append(records, *rec)
	}

	return records, discarded
}
