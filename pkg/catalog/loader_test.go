package catalog

import (
	"errors"
	"strings"
	"testing"
)

const catalogJSON = `{
  "Green": {
    "types": {
      "sencha": {
        "name": "Sencha",
        "caffeine": "medium",
        "origin": "Japan",
        "tasteDescription": "grassy, fresh",
        "healthBenefits": ["focus"]
      }
    }
  },
  "Herbal": {
    "types": {
      "chamomile": {
        "name": "Chamomile",
        "tasteDescription": "floral, sweet"
      }
    }
  }
}`

func TestParseCatalog(t *testing.T) {
	cat, err := ParseCatalog([]byte(catalogJSON))
	if err != nil {
		t.Fatalf("ParseCatalog failed: %v", err)
	}
	if len(cat) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cat))
	}

	sencha, ok := cat["Green"].Types["sencha"]
	if !ok {
		t.Fatal("sencha missing from Green category")
	}
	if sencha.Caffeine != "medium" || len(sencha.HealthBenefits) != 1 {
		t.Errorf("unexpected sencha record: %+v", sencha)
	}

	// Optional fields simply stay empty.
	chamomile := cat["Herbal"].Types["chamomile"]
	if chamomile.Caffeine != "" || chamomile.Origin != "" {
		t.Errorf("expected empty optional fields, got %+v", chamomile)
	}
}

func TestParseCatalog_Invalid(t *testing.T) {
	if _, err := ParseCatalog([]byte("{not json")); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParseAssociations(t *testing.T) {
	csvData := `Tea Type,Health Benefit
"sencha, matcha",focus
peppermint,"digestion, nausea"
`
	records, err := ParseAssociations(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("ParseAssociations failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].TeaType != "sencha, matcha" {
		t.Errorf("unexpected tea list: %q", records[0].TeaType)
	}
	if records[1].HealthBenefit != "digestion, nausea" {
		t.Errorf("unexpected benefit list: %q", records[1].HealthBenefit)
	}
}

func TestParseAssociations_SkipsMalformedRows(t *testing.T) {
	csvData := `Tea Type,Health Benefit
sencha,focus
,missing tea
chamomile
peppermint,digestion
`
	records, err := ParseAssociations(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("ParseAssociations failed: %v", err)
	}
	// The empty-tea row and the short row are skipped; the load continues.
	if len(records) != 2 {
		t.Fatalf("expected 2 surviving records, got %d: %v", len(records), records)
	}
	if records[1].TeaType != "peppermint" {
		t.Errorf("rows after a malformed one must still load, got %v", records)
	}
}

func TestParseAssociations_MissingHeader(t *testing.T) {
	csvData := `Tea,Benefit
sencha,focus
`
	if _, err := ParseAssociations(strings.NewReader(csvData), nil); !errors.Is(err, ErrMissingHeader) {
		t.Fatalf("expected ErrMissingHeader, got %v", err)
	}
}

func TestParseAssociations_ExtraColumns(t *testing.T) {
	csvData := `Source,Tea Type,Health Benefit
study,green tea,metabolism
`
	records, err := ParseAssociations(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("ParseAssociations failed: %v", err)
	}
	if len(records) != 1 || records[0].TeaType != "green tea" {
		t.Errorf("header mapping must survive extra columns, got %v", records)
	}
}
