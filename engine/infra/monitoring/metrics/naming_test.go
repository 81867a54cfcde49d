package metrics

import "testing"

func TestMetricName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "adds prefix", input: "requests_total", expected: "board_requests_total"},
		{name: "keeps prefixed", input: "board_custom_metric", expected: "board_custom_metric"},
		{name: "blank returns prefix", input: "", expected: "board_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MetricName(tt.input); got != tt.expected {
				t.Fatalf("MetricName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMetricNameWithSubsystem(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		subsystem  string
		metricName string
		expected   string
	}{
		{name: "subsystem and name", subsystem: "postgres", metricName: "connections_open", expected: "board_postgres_connections_open"},
		{name: "subsystem trims underscore", subsystem: "_http_", metricName: "requests_total", expected: "board_http_requests_total"},
		{name: "empty name", subsystem: "ratelimit", metricName: "", expected: "board_ratelimit"},
		{name: "empty subsystem", subsystem: "", metricName: "uptime_seconds", expected: "board_uptime_seconds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MetricNameWithSubsystem(tt.subsystem, tt.metricName); got != tt.expected {
				t.Fatalf("MetricNameWithSubsystem(%q, %q) = %q, want %q", tt.subsystem, tt.metricName, got, tt.expected)
			}
		})
	}
}
