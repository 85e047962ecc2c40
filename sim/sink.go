package sim

// TelemetrySink is the external streaming consumer (spec §6 "Telemetry
// sink"). The HTTP/WebSocket broadcast layer a real deployment uses is an
// out-of-core collaborator (spec §1); this interface is the seam it
// plugs into. A CLI printer, a test recorder, or a WS broadcaster can all
// implement it.
type TelemetrySink interface {
	Emit(record any)
}

// MetricsSnapshot is the "metrics" field of a SIM_UPDATE record.
type MetricsSnapshot struct {
	Hits       int                          `json:"hits"`
	Misses     int                          `json:"misses"`
	TotalReads int                          `json:"total_reads"`
	AgentStats map[string]NodeStatsSnapshot `json:"agent_stats"`
	RecentLogs []LogRecord                  `json:"recent_logs"`
}

// StateUpdate is telemetry record 1 (spec §6): a progress snapshot.
type StateUpdate struct {
	Type        string          `json:"type"`
	Time        float64         `json:"time"`
	Progress    float64         `json:"progress"`
	Metrics     MetricsSnapshot `json:"metrics"`
	AgentStates map[string]bool `json:"agent_states"`
}

// LogUpdate is telemetry record 2 (spec §6): one diffed log entry,
// formatted as "<key> on <node>" per the original dashboard (spec §13).
// MessageID carries the correlation id of the Message that triggered the
// event, when one was attached, so an external consumer can tie the log
// line back to the originating READ.
type LogUpdate struct {
	Type      string  `json:"type"`
	Time      float64 `json:"time"`
	LogType   string  `json:"log_type"`
	Msg       string  `json:"msg"`
	MessageID string  `json:"message_id,omitempty"`
}

// FinalUpdate is telemetry record 3 (spec §6): the terminal message.
type FinalUpdate struct {
	Type         string          `json:"type"`
	FinalMetrics MetricsSnapshot `json:"final_metrics"`
	FinalTime    float64         `json:"final_time"`
}

func logMsg(d LogDetails) string {
	key := d.Key
	if key == "" {
		key = "N/A"
	}
	node := d.Node
	if node == "" {
		node = "N/A"
	}
	return key + " on " + node
}
