package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	d, err := ParseDimen("12pt")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*PT {
		t.Errorf("(1) expected d to be 12pt (%d), is %d", 12*PT, d)
	}
	//
	d, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %d", d)
	}
	//
	d, err = ParseDimen("2.5cm")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if d != 900000 {
		t.Errorf("(3) expected d to be 900000 EMU, is %d", d)
	}
	//
	if _, err = ParseDimen("12furlong"); err == nil {
		t.Errorf("(4) expected unknown unit to be rejected")
	}
}

func TestUnitConversions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheetmetrics.core")
	defer teardown()
	//
	if IN != 72*PT {
		t.Errorf("expected 1 inch to be 72 points")
	}
	if FromPixels(96, 96) != IN {
		t.Errorf("expected 96 px at 96 dpi to be 1 inch, is %v", FromPixels(96, 96))
	}
	if PointsPerPixel(96) != 0.75 {
		t.Errorf("expected 0.75 pt/px at 96 dpi, is %f", PointsPerPixel(96))
	}
	if PointsPerPixel(0) != 0.75 {
		t.Errorf("expected default resolution for dpi=0")
	}
	if FromPoints(15).Points() != 15 {
		t.Errorf("expected 15pt to round-trip, is %f", FromPoints(15).Points())
	}
	if px := (2 * IN).Pixels(120); px != 240 {
		t.Errorf("expected 2in at 120 dpi to be 240 px, is %f", px)
	}
}
