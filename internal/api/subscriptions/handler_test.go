package subscriptionsapi

import (
	"testing"

	"bookly-backend/internal/domain/plans"
	"bookly-backend/internal/domain/providers"

	"github.com/stretchr/testify/assert"
)

func TestAdminMessage(t *testing.T) {
	basic := &plans.Plan{Name: "Basic", PriceINR: 199}
	pro := &plans.Plan{Name: "Pro", PriceINR: 499}

	fresh := &providers.Provider{Username: "asha"}
	onBasic := &providers.Provider{Username: "asha", Plan: basic}

	assert.Equal(t, "asha subscribed to Pro (₹499)", adminMessage(fresh, pro, false))
	assert.Equal(t, "asha upgraded to Pro (₹499)", adminMessage(onBasic, pro, true))
	assert.Equal(t, "asha renewed Basic (₹199)", adminMessage(onBasic, basic, true))
}
