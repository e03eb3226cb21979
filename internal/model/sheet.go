package model

// Sheet is one worksheet from an ingested workbook: the sheet name,
// the header row, and the remaining rows keyed by those headers.
type Sheet struct {
	Name    string
	Headers []string
	Rows    []RawRecord
}
