package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleBlockedSlot_AddAndRemove(t *testing.T) {
	set, blocked := ToggleBlockedSlot(nil, "2024-03-01T10:00:00Z")
	assert.True(t, blocked)
	assert.Equal(t, []string{"2024-03-01T10:00:00Z"}, set)

	set, blocked = ToggleBlockedSlot(set, "2024-03-01T10:00:00Z")
	assert.False(t, blocked)
	assert.Empty(t, set)
}

func TestToggleBlockedSlot_NoDuplicates(t *testing.T) {
	// A set that already carries a duplicate is cleaned on the way through.
	set := []string{"a", "b", "a"}
	set, blocked := ToggleBlockedSlot(set, "c")
	assert.True(t, blocked)
	assert.Equal(t, []string{"a", "b", "c"}, set)
}

func TestToggleBlockedDate_RemoveMissingLeavesSetUnchanged(t *testing.T) {
	set := []string{"2024-03-01", "2024-03-02"}
	// Toggling an absent member adds it; toggling again restores the set.
	next, blocked := ToggleBlockedDate(set, "2024-03-03")
	assert.True(t, blocked)
	next, blocked = ToggleBlockedDate(next, "2024-03-03")
	assert.False(t, blocked)
	assert.Equal(t, set, next)
}

func TestFindServiceType(t *testing.T) {
	p := &Provider{Settings: Settings{ServiceTypes: []ServiceType{
		{Name: "Haircut", Price: 500, Enabled: true, Category: CategoryShop},
		{Name: "Consultation", Price: 0, Enabled: true, Category: CategoryOnline},
	}}}

	st := p.FindServiceType("Haircut")
	assert.NotNil(t, st)
	assert.Equal(t, 500.0, st.Price)

	assert.Nil(t, p.FindServiceType("Massage"))
}
