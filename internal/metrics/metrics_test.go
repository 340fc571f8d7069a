package metrics_test

import (
	"testing"

	"github.com/SscSPs/ark_management_app/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordLedgerWrite(t *testing.T) {
	before := testutil.ToFloat64(metrics.LedgerWritesTotal.WithLabelValues(metrics.LedgerBatchDelete))

	metrics.RecordLedgerWrite(metrics.LedgerBatchDelete, 3)
	metrics.RecordLedgerWrite(metrics.LedgerBatchDelete, 0)

	after := testutil.ToFloat64(metrics.LedgerWritesTotal.WithLabelValues(metrics.LedgerBatchDelete))
	assert.Equal(t, before+3, after)
}

func TestRecordLogin(t *testing.T) {
	before := testutil.ToFloat64(metrics.LoginTotal.WithLabelValues(metrics.LoginFailure))
	metrics.RecordLogin(metrics.LoginFailure)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.LoginTotal.WithLabelValues(metrics.LoginFailure)))
}
