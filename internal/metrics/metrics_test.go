package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIsIdempotent(t *testing.T) {
	require.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestCounters(t *testing.T) {
	Register()

	before := testutil.ToFloat64(totalMismatches)
	IncTotalMismatch()
	assert.Equal(t, before+1, testutil.ToFloat64(totalMismatches))

	before = testutil.ToFloat64(webhookFailures)
	IncWebhookFailure()
	assert.Equal(t, before+1, testutil.ToFloat64(webhookFailures))

	before = testutil.ToFloat64(webhookIgnored.WithLabelValues("payment.updated"))
	IncWebhookIgnored("payment.updated")
	assert.Equal(t, before+1, testutil.ToFloat64(webhookIgnored.WithLabelValues("payment.updated")))
}
