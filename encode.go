package finance

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// encodeCollection writes a collection as a JSON array, one record per
// line, fields in each record's canonical order. The empty collection
// encodes as "[]" so a slot is never ambiguous with a missing one.
func encodeCollection[E json.Marshaler](w io.Writer, records []E) error {
	if len(records) == 0 {
		_, err := io.WriteString(w, "[]\n")
		return err
	}
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}
	for i, r := range records {
		data, err := r.MarshalJSON()
		if err != nil {
			return fmt.Errorf("could not encode record %d: %w", i, err)
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		sep := "\n"
		if i < len(records)-1 {
			sep = ",\n"
		}
		if _, err := io.WriteString(w, sep); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

// decodeCollection reads a collection back from its JSON array form.
// Records decode defensively: fields missing from older snapshots take
// their defaults in each entity's UnmarshalJSON.
func decodeCollection[E any](r io.Reader) ([]E, error) {
	var records []E
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("could not decode collection: %w", err)
	}
	if records == nil {
		records = []E{}
	}
	return records, nil
}
