package outline

import "testing"

func TestFontStatsAverageDeduplicatesSizes(t *testing.T) {
	stats := NewFontStats()
	// Ten observations at 10pt and one at 30pt: the mean is over distinct
	// sizes, not weighted by frequency.
	for i := 0; i < 10; i++ {
		stats.Observe(10.0)
	}
	stats.Observe(30.0)

	if avg := stats.Average(); avg != 20.0 {
		t.Fatalf("expected average 20.0 over distinct sizes, got %v", avg)
	}
}

func TestFontStatsEmptyDefaults(t *testing.T) {
	stats := NewFontStats()
	if !stats.Empty() {
		t.Fatal("expected fresh stats to be empty")
	}
	if avg := stats.Average(); avg != 12.0 {
		t.Errorf("expected default average 12.0, got %v", avg)
	}
	if largest := stats.Largest(); largest != 18.0 {
		t.Errorf("expected default largest 18.0, got %v", largest)
	}
}

func TestFontStatsIgnoresNonPositiveSizes(t *testing.T) {
	stats := NewFontStats()
	stats.Observe(0)
	stats.Observe(-4.5)
	if !stats.Empty() {
		t.Fatal("expected non-positive sizes to be ignored")
	}
}

func TestFontStatsRoundsToOneDecimal(t *testing.T) {
	stats := NewFontStats()
	stats.Observe(10.04)
	stats.Observe(10.01)
	stats.Observe(9.96)

	// 10.04 and 10.01 both round to 10.0, 9.96 rounds to 10.0 as well:
	// one distinct size.
	if avg := stats.Average(); avg != 10.0 {
		t.Fatalf("expected all observations to collapse to 10.0, got average %v", avg)
	}
	if largest := stats.Largest(); largest != 10.0 {
		t.Fatalf("expected largest 10.0, got %v", largest)
	}
}

func TestFontStatsLargest(t *testing.T) {
	stats := NewFontStats()
	for i := 0; i < 5; i++ {
		stats.Observe(10.0)
	}
	stats.Observe(20.0)

	if largest := stats.Largest(); largest != 20.0 {
		t.Fatalf("expected largest 20.0, got %v", largest)
	}
}
