package catalog

import (
	"strings"
	"testing"
)

const sampleCSV = `Alcohol Level (ABV),Winery,Name,Vintage,Country,Region,Colour of Wine,Grape Types,Ratings,Number of Ratings,Price
14.5,Juan Gil,Blue Label,2022.0,Spain,Jumilla,Red,Monastrell,4.3,12094,37
12.5,Chateau de Malle,M de Malle,2015.0,France,Graves,White,"Sauvignon Blanc, Semillon",4.0,523,"2,500"
,Mystery Cellars,Unknown Red,,Italy,,Red,,,,n/a
`

func TestLoadParsesRows(t *testing.T) {
	wines, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(wines) != 3 {
		t.Fatalf("expected 3 wines, got %d", len(wines))
	}

	w := wines[0]
	if w.Winery != "Juan Gil" || w.Country != "Spain" {
		t.Errorf("unexpected first row: %+v", w)
	}
	if w.ABV != 14.5 {
		t.Errorf("ABV = %v, want 14.5", w.ABV)
	}
	if w.Vintage != "2022" {
		t.Errorf("Vintage = %q, want 2022 (float cell normalized)", w.Vintage)
	}
	if w.PriceValue != 37 {
		t.Errorf("PriceValue = %v, want 37", w.PriceValue)
	}
}

func TestLoadNormalizesCentsPrices(t *testing.T) {
	wines, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// "2,500" is a cents-valued cell and must scale to 25.
	if got := wines[1].PriceValue; got != 25 {
		t.Errorf("PriceValue = %v, want 25", got)
	}
}

func TestLoadKeepsMalformedRowsWithSentinels(t *testing.T) {
	wines, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	w := wines[2]
	if w.ABV != -1 {
		t.Errorf("missing ABV must be -1, got %v", w.ABV)
	}
	if w.PriceValue != -1 {
		t.Errorf("unparsable price must be -1, got %v", w.PriceValue)
	}
}

func TestLoadRejectsMissingColumns(t *testing.T) {
	_, err := Load(strings.NewReader("Winery,Name\nA,B\n"))
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
}
