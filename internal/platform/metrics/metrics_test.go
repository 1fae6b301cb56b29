package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAuthEvent(t *testing.T) {
	before := testutil.ToFloat64(authEventsTotal.WithLabelValues(EventLogin, OutcomeFailure, "InvalidCredentials"))

	RecordAuthEvent(EventLogin, OutcomeFailure, "InvalidCredentials")
	RecordAuthEvent(EventLogin, OutcomeFailure, "InvalidCredentials")

	after := testutil.ToFloat64(authEventsTotal.WithLabelValues(EventLogin, OutcomeFailure, "InvalidCredentials"))
	assert.Equal(t, before+2, after)
}
