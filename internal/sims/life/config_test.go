package life

import "testing"

func TestFromMapDefaults(t *testing.T) {
	c := FromMap(nil)
	d := DefaultConfig()
	if c != d {
		t.Fatalf("nil map should yield defaults, got %+v", c)
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"rows":    "450",
		"cols":    "800",
		"seed":    "9",
		"density": "0.25",
		"mode":    "noise",
	})
	if c.Rows != 450 || c.Cols != 800 {
		t.Fatalf("dimensions not applied: %dx%d", c.Rows, c.Cols)
	}
	if c.Seed != 9 {
		t.Fatalf("seed not applied: %d", c.Seed)
	}
	if c.Density != 0.25 {
		t.Fatalf("density not applied: %f", c.Density)
	}
	if c.Mode != SeedNoise {
		t.Fatalf("mode not applied: %s", c.Mode)
	}
}

func TestFromMapRejectsInvalid(t *testing.T) {
	d := DefaultConfig()
	c := FromMap(map[string]string{
		"rows":    "0",
		"cols":    "-4",
		"density": "1.5",
		"mode":    "checkerboard",
	})
	if c.Rows != d.Rows || c.Cols != d.Cols {
		t.Fatal("non-positive dimensions must keep defaults")
	}
	if c.Density != d.Density {
		t.Fatal("out-of-range density must keep the default")
	}
	if c.Mode != d.Mode {
		t.Fatal("unknown seed mode must keep the default")
	}
}
