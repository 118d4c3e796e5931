package availability

// Key identifies one user's response to one event across all roles.
type Key struct {
	EventID string
	UserID  string
}

// Aggregate folds multiple role records per (event, user) into one effective
// status. A user who is available in any capacity counts as available, even
// if another role record is still pending; otherwise any unavailable record
// wins over pending. Users with no records get no entry at all, which
// callers treat as "no response" rather than "pending".
func Aggregate(records []Record) map[Key]Status {
	out := make(map[Key]Status, len(records))
	for _, rec := range records {
		key := Key{EventID: rec.EventID, UserID: rec.UserID}
		current, seen := out[key]
		if !seen {
			out[key] = rec.Status
			continue
		}
		out[key] = merge(current, rec.Status)
	}

	return out
}

// EffectiveStatus aggregates the records of a single (event, user) pair.
// The second return is false when there are no records.
func EffectiveStatus(records []Record, eventID, userID string) (Status, bool) {
	var status Status
	found := false
	for _, rec := range records {
		if rec.EventID != eventID || rec.UserID != userID {
			continue
		}
		if !found {
			status = rec.Status
			found = true
			continue
		}
		status = merge(status, rec.Status)
	}

	return status, found
}

func merge(a, b Status) Status {
	if a == StatusAvailable || b == StatusAvailable {
		return StatusAvailable
	}
	if a == StatusUnavailable || b == StatusUnavailable {
		return StatusUnavailable
	}
	return StatusPending
}
