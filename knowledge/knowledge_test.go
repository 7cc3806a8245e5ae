package knowledge

import (
	"testing"
	"time"
)

func TestTables(t *testing.T) {
	if got := len(Crops()); got != 22 {
		t.Errorf("expected 22 crops, got %d", got)
	}
	if got := len(Markets()); got != 22 {
		t.Errorf("expected 22 commodities, got %d", got)
	}

	seen := map[string]bool{}
	for _, c := range Crops() {
		if seen[c.Name] {
			t.Errorf("duplicate crop %s", c.Name)
		}
		seen[c.Name] = true

		if c.OptimalTemperature.Min > c.OptimalTemperature.Max || c.WaterRequirement.Min > c.WaterRequirement.Max {
			t.Errorf("%s: inverted range", c.Name)
		}
		if len(c.GrowingSeason) == 0 {
			t.Errorf("%s: empty growing season", c.Name)
		}
		if c.GrowingMonths <= 0 || c.BaseYield <= 0 || c.BasePrice <= 0 {
			t.Errorf("%s: non-positive agronomic values", c.Name)
		}
		if _, ok := Market(c.CommodityID); !ok {
			t.Errorf("%s: commodity %q not in market table", c.Name, c.CommodityID)
		}
		if len(FertilizersFor(c)) == 0 || len(PesticidesFor(c)) == 0 {
			t.Errorf("%s: no input plan", c.Name)
		}
	}

	for _, m := range Markets() {
		for month := time.January; month <= time.December; month++ {
			if f := m.SeasonalFactor(month); f <= 0 {
				t.Errorf("%s: seasonal factor %v for %s", m.ID, f, month)
			}
		}
		if m.Volatility < 0 || m.Volatility > 1 {
			t.Errorf("%s: volatility out of range %v", m.ID, m.Volatility)
		}
		for _, s := range []float64{m.Sensitivity.Temperature, m.Sensitivity.Rainfall, m.Sensitivity.Humidity} {
			if s < -1 || s > 1 {
				t.Errorf("%s: sensitivity out of range %v", m.ID, s)
			}
		}
		for _, sub := range m.Substitutes {
			if _, ok := Market(sub); !ok {
				t.Errorf("%s: unknown substitute %q", m.ID, sub)
			}
		}
	}
}

func TestCopiesAreIndependent(t *testing.T) {
	crops := Crops()
	crops[0].GrowingSeason[0] = time.March
	crops[0].BaseYield = -1

	fresh := Crops()
	if fresh[0].GrowingSeason[0] == time.March || fresh[0].BaseYield == -1 {
		t.Fatal("modifying a returned crop changed the table")
	}

	markets := Markets()
	markets[0].Substitutes[0] = "changed"
	markets[0].Seasonality[0] = 99

	m, _ := Market(markets[0].ID)
	if m.Substitutes[0] == "changed" || m.Seasonality[0] == 99 {
		t.Fatal("modifying a returned commodity changed the table")
	}

	plan := FertilizersFor(fresh[0])
	plan[0].Quantity = 0
	if FertilizersFor(fresh[0])[0].Quantity == 0 {
		t.Fatal("modifying a returned plan changed the table")
	}
}

func TestCropLookup(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Rice", "Rice"},
		{"rice", "Rice"},
		{"Maize", "Maize (Corn)"},
		{"maize (corn)", "Maize (Corn)"},
		{"Bajra", "Bajra (Pearl Millet)"},
	}
	for _, tt := range tests {
		c, ok := Crop(tt.name)
		if !ok || c.Name != tt.want {
			t.Errorf("Crop(%q) = %q, %v; want %q", tt.name, c.Name, ok, tt.want)
		}
	}

	if _, ok := Crop("Quinoa"); ok {
		t.Error("expected unknown crop to be missing")
	}

	if id, ok := CommodityForCrop("Groundnut"); !ok || id != "groundnut" {
		t.Errorf("expected groundnut commodity, got %q %v", id, ok)
	}
}

func TestInputPlans(t *testing.T) {
	rice, _ := Crop("Rice")
	potato, _ := Crop("Potato")
	onion, _ := Crop("Onion")
	mango, _ := Crop("Mango")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"rice pesticide by plan", PesticidesFor(rice)[0].Name, "Chlorpyrifos"},
		{"rice fertilizer by category", FertilizersFor(rice)[0].Name, "Urea"},
		{"potato pesticide by plan", PesticidesFor(potato)[0].Name, "Mancozeb"},
		{"potato fertilizer by category", FertilizersFor(potato)[0].Name, "NPK 10-26-26"},
		{"onion fertilizer by plan", FertilizersFor(onion)[0].Name, "NPK 15-15-15"},
		{"mango fertilizer by category", FertilizersFor(mango)[0].Name, "NPK 14-14-14"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}

	unknown := CropProfile{Category: Category("spice")}
	if got := FertilizersFor(unknown); len(got) != 2 || got[1].Name != "Urea" {
		t.Errorf("expected default plan for unknown category, got %+v", got)
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Min: 20, Max: 35}
	for v, want := range map[float64]bool{19.9: false, 20: true, 27: true, 35: true, 35.1: false} {
		if got := r.Contains(v); got != want {
			t.Errorf("Contains(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestInSeason(t *testing.T) {
	rice, _ := Crop("Rice")
	if !rice.InSeason(time.July) || rice.InSeason(time.January) {
		t.Error("rice season should include July and exclude January")
	}
	banana, _ := Crop("Banana")
	for m := time.January; m <= time.December; m++ {
		if !banana.InSeason(m) {
			t.Errorf("banana should be in season in %s", m)
		}
	}
}
