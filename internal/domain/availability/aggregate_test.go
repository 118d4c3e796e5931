package availability

import "testing"

func TestAggregate_AvailableBeatsEverything(t *testing.T) {
	records := []Record{
		{EventID: "ev-1", UserID: "user-1", Role: RoleStaff, Status: StatusPending},
		{EventID: "ev-1", UserID: "user-1", Role: RolePlayer, Status: StatusAvailable},
	}

	got := Aggregate(records)
	if status := got[Key{EventID: "ev-1", UserID: "user-1"}]; status != StatusAvailable {
		t.Fatalf("expected available, got %s", status)
	}
}

func TestAggregate_UnavailableBeatsPending(t *testing.T) {
	records := []Record{
		{EventID: "ev-1", UserID: "user-1", Role: RolePlayer, Status: StatusUnavailable},
		{EventID: "ev-1", UserID: "user-1", Role: RoleStaff, Status: StatusPending},
	}

	got := Aggregate(records)
	if status := got[Key{EventID: "ev-1", UserID: "user-1"}]; status != StatusUnavailable {
		t.Fatalf("expected unavailable, got %s", status)
	}
}

func TestAggregate_SinglePendingStaysPending(t *testing.T) {
	records := []Record{
		{EventID: "ev-1", UserID: "user-1", Role: RolePlayer, Status: StatusPending},
	}

	got := Aggregate(records)
	if status := got[Key{EventID: "ev-1", UserID: "user-1"}]; status != StatusPending {
		t.Fatalf("expected pending, got %s", status)
	}
}

func TestAggregate_NoRecordsMeansNoEntry(t *testing.T) {
	got := Aggregate([]Record{
		{EventID: "ev-1", UserID: "user-1", Role: RolePlayer, Status: StatusAvailable},
	})

	if _, ok := got[Key{EventID: "ev-1", UserID: "user-2"}]; ok {
		t.Fatal("expected no entry for a user with no records")
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	forward := []Record{
		{EventID: "ev-1", UserID: "user-1", Role: RolePlayer, Status: StatusAvailable},
		{EventID: "ev-1", UserID: "user-1", Role: RoleStaff, Status: StatusUnavailable},
	}
	reversed := []Record{forward[1], forward[0]}

	a := Aggregate(forward)
	b := Aggregate(reversed)

	key := Key{EventID: "ev-1", UserID: "user-1"}
	if a[key] != b[key] {
		t.Fatalf("aggregation depends on record order: %s vs %s", a[key], b[key])
	}
	if a[key] != StatusAvailable {
		t.Fatalf("expected available, got %s", a[key])
	}
}

func TestEffectiveStatus_MissingUser(t *testing.T) {
	records := []Record{
		{EventID: "ev-1", UserID: "user-1", Role: RolePlayer, Status: StatusPending},
	}

	if _, ok := EffectiveStatus(records, "ev-1", "user-9"); ok {
		t.Fatal("expected no effective status for unknown user")
	}

	status, ok := EffectiveStatus(records, "ev-1", "user-1")
	if !ok || status != StatusPending {
		t.Fatalf("expected pending, got %s (found=%v)", status, ok)
	}
}

func TestRank_Ordering(t *testing.T) {
	if !(Rank(StatusAvailable) < Rank(StatusPending) && Rank(StatusPending) < Rank(StatusUnavailable)) {
		t.Fatal("availability rank ordering broken")
	}
	if Rank(Status("whatever")) != 4 {
		t.Fatalf("unknown status must rank last, got %d", Rank(Status("whatever")))
	}
}
