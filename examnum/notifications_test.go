package examnum

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyCompleteDisabled(t *testing.T) {
	err := NotifyComplete(context.Background(), NotificationsConfig{}, nil, 0, 0)
	require.NoError(t, err)
}

func TestRunSummary(t *testing.T) {
	results := []BatchResult{
		{
			Batch: Batch{Prefix: "S0", Count: 2},
			Codes: []string{"S0123456", "S0654321"},
		},
		{
			Batch: Batch{Prefix: "", Count: 1},
			Codes: []string{"000042"},
		},
	}

	summary := runSummary(results, 7, 1500*time.Millisecond)

	assert.Contains(t, summary, "prefix S0: 2 codes")
	assert.Contains(t, summary, "prefix (none): 1 codes")
	assert.Contains(t, summary, "3 codes total")
	assert.Contains(t, summary, "7 candidates rejected")
	assert.Contains(t, summary, "1.5s")
}
