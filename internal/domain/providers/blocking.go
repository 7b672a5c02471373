package providers

// ToggleBlockedSlot flips membership of a slot (ISO timestamp string) in the
// blocked set. Returns the new set and whether the slot is now blocked.
func ToggleBlockedSlot(blocked []string, slot string) ([]string, bool) {
	return toggle(blocked, slot)
}

// ToggleBlockedDate flips membership of a date string in the blocked set.
func ToggleBlockedDate(blocked []string, date string) ([]string, bool) {
	return toggle(blocked, date)
}

// toggle keeps set semantics over an ordered slice: adding an existing
// member removes it instead, and duplicates already present are dropped.
func toggle(set []string, member string) ([]string, bool) {
	out := make([]string, 0, len(set)+1)
	found := false
	for _, v := range set {
		if v == member {
			found = true
			continue
		}
		if contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	if found {
		return out, false
	}
	return append(out, member), true
}

func contains(set []string, member string) bool {
	for _, v := range set {
		if v == member {
			return true
		}
	}
	return false
}
