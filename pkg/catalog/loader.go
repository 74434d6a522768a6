package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/optimalsteep/teagraph/pkg/logging"
)

// Association CSV column names
const (
	colTeaType       = "Tea Type"
	colHealthBenefit = "Health Benefit"
)

// LoadCatalog reads the JSON tea catalog. An unparseable file is a hard
// error; per-record problems are handled later by the builder.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes catalog JSON.
func ParseCatalog(data []byte) (Catalog, error) {
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return cat, nil
}

// LoadAssociations reads the tea-benefit CSV. Rows with missing or empty
// fields are skipped with a warning; the load never aborts on a bad row.
func LoadAssociations(path string, log *logging.JSONLogger) ([]AssociationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open associations: %w", err)
	}
	defer f.Close()
	return ParseAssociations(f, log)
}

// ParseAssociations decodes association rows from CSV with a header line
// naming the "Tea Type" and "Health Benefit" columns.
func ParseAssociations(r io.Reader, log *logging.JSONLogger) ([]AssociationRecord, error) {
	if log == nil {
		log = logging.Discard()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are handled per record
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read association header: %w", err)
	}

	teaIdx, benefitIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case colTeaType:
			teaIdx = i
		case colHealthBenefit:
			benefitIdx = i
		}
	}
	if teaIdx < 0 || benefitIdx < 0 {
		return nil, fmt.Errorf("%w: need %q and %q", ErrMissingHeader, colTeaType, colHealthBenefit)
	}

	var records []AssociationRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Warn("skipping unreadable association row",
				logging.Int("line", line), logging.Error(err))
			continue
		}
		if teaIdx >= len(row) || benefitIdx >= len(row) {
			log.Warn("skipping short association row", logging.Int("line", line))
			continue
		}
		rec := AssociationRecord{
			TeaType:       row[teaIdx],
			HealthBenefit: row[benefitIdx],
		}
		if err := ValidateAssociation(rec); err != nil {
			log.Warn("skipping invalid association row",
				logging.Int("line", line), logging.Error(err))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
