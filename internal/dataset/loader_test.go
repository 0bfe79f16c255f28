package dataset

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	csvContent := []byte(`Country Name,Country Code,Series Name,Series Code,2010 [YR2010],2011 [YR2011]
Brazil,BRA,Merchandise exports (current US$),TX.VAL.MRCH.CD.WT,201789000000,256039000000
Canada,CAN,Merchandise exports (current US$),TX.VAL.MRCH.CD.WT,387481000000,452440000000
China,CHN,Merchandise imports (current US$),TM.VAL.MRCH.CD.WT,1380000000000,1825000000000
,,,,,
,,,,,
,,,,,
,,,,,
,,,,,
,,,,,
,,,,,
,,,,,
Data from database: World Development Indicators
Last Updated: 12/06/2023
`)

	tmpFile, err := os.CreateTemp("", "merch_*.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(csvContent); err != nil {
		t.Fatal(err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatal(err)
	}

	table, err := Load(tmpFile.Name(), nil)
	if err != nil {
		t.Fatal(err)
	}

	// 3 data rows + 10 footer rows in, 3 rows out
	if table.Len() != 3 {
		t.Fatalf("Expected 3 rows, got %d", table.Len())
	}

	wantCols := []string{"Country", "Series", "2010", "2011"}
	if len(table.Columns) != len(wantCols) {
		t.Fatalf("Expected %d columns, got %v", len(wantCols), table.Columns)
	}
	for i, c := range wantCols {
		if table.Columns[i] != c {
			t.Errorf("Column %d: expected %q, got %q", i, c, table.Columns[i])
		}
	}

	// Code columns dropped, values intact
	row := table.Rows[0]
	if row[0] != "Brazil" {
		t.Errorf("Row 0 Country: expected Brazil, got %q", row[0])
	}
	if row[1] != "Merchandise exports (current US$)" {
		t.Errorf("Row 0 Series: got %q", row[1])
	}
	if row[2] != "201789000000" {
		t.Errorf("Row 0 2010: got %q", row[2])
	}
}

func TestLoadKeepsMalformedCells(t *testing.T) {
	csvContent := []byte(`Country Name,Country Code,Series Name,Series Code,2010 [YR2010]
Brazil,BRA,Merchandise exports (current US$),TX.VAL.MRCH.CD.WT,N/A
Data from database: World Development Indicators
`)

	tmpFile, err := os.CreateTemp("", "merch_*.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name())
	if _, err := tmpFile.Write(csvContent); err != nil {
		t.Fatal(err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatal(err)
	}

	table, err := Load(tmpFile.Name(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 1 {
		t.Fatalf("Expected 1 row, got %d", table.Len())
	}
	// Coercion is deferred to selection time
	if table.Rows[0][2] != "N/A" {
		t.Errorf("Expected N/A kept verbatim, got %q", table.Rows[0][2])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("no_such_file.csv", nil); err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestLoadMissingCodeColumns(t *testing.T) {
	csvContent := []byte("Country Name,Series Name,2010\nBrazil,Exports,1\n")

	tmpFile, err := os.CreateTemp("", "merch_*.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name())
	if _, err := tmpFile.Write(csvContent); err != nil {
		t.Fatal(err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(tmpFile.Name(), nil); err == nil {
		t.Fatal("Expected an error when the code columns are absent")
	}
}
