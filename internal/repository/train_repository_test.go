package repository

import "testing"

func TestSearchMatchesOnEitherStation(t *testing.T) {
	r := NewTrainRepo()

	// Destination matches nothing, but the source code matches train 1:
	// the union semantics must still return it.
	got := r.Search("ILKL", "ZZZZ", "")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("Search(ILKL, ZZZZ) = %d trains, want just train 1", len(got))
	}

	// Source matches nothing, destination code matches train 2.
	got = r.Search("ZZZZ", "UBL", "")
	found := false
	for _, tr := range got {
		if tr.ID == "2" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Search(ZZZZ, UBL) should include train 2, got %d trains", len(got))
	}
}

func TestSearchNameSubstringIsCaseInsensitive(t *testing.T) {
	r := NewTrainRepo()
	// "bengaluru" is a substring of SBC's display name; train 1 terminates
	// there.
	got := r.Search("ZZZZ", "bengaluru", "")
	found := false
	for _, tr := range got {
		if tr.ID == "1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Search by destination name substring missed train 1")
	}
}

func TestSearchClassFilter(t *testing.T) {
	r := NewTrainRepo()
	// UBL->BGK with a Sleeper filter: only trains offering SL survive.
	got := r.Search("UBL", "BGK", "SL")
	for _, tr := range got {
		if _, ok := tr.ClassByCode("SL"); !ok {
			t.Fatalf("train %s returned despite missing class SL", tr.ID)
		}
	}
	if len(got) == 0 {
		t.Fatalf("class filter removed every match")
	}
}

func TestStationNameFallsBackToCode(t *testing.T) {
	r := NewTrainRepo()
	if got := r.StationName("SBC"); got != "Bengaluru City Junction" {
		t.Fatalf("StationName(SBC) = %q", got)
	}
	if got := r.StationName("XXXX"); got != "XXXX" {
		t.Fatalf("StationName(XXXX) = %q, want the code itself", got)
	}
}

func TestGetTrain(t *testing.T) {
	r := NewTrainRepo()
	tr, ok := r.Get("1")
	if !ok || tr.Number != "12301" {
		t.Fatalf("Get(1) = %+v, %v", tr, ok)
	}
	if _, ok := r.Get("99"); ok {
		t.Fatalf("Get(99) should report absence")
	}
	if len(tr.Classes) == 0 {
		t.Fatalf("train 1 has no classes")
	}
	if c, ok := tr.ClassByCode("2A"); !ok || c.Fare != 2800 {
		t.Fatalf("ClassByCode(2A) = %+v, %v", c, ok)
	}
}
