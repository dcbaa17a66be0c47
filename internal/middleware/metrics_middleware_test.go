package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricPathCollapsesNumericSegments(t *testing.T) {
	assert.Equal(t, "/api/rfid/logs/:id", metricPath("/api/rfid/logs/42"))
	assert.Equal(t, "/api/rfid/cards/:id/ruangan/:id", metricPath("/api/rfid/cards/7/ruangan/3"))
	assert.Equal(t, "/api/rfid/logs", metricPath("/api/rfid/logs"))
	assert.Equal(t, "/health", metricPath("/health"))
}
