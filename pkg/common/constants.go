package common

const (
	RedisStreamAutopilotRun = "autopilot.run"
	RedisStreamOrderClosed  = "orders.closed"

	SourceAutoSignals = "auto-signals"
	SourceCron        = "cron"
	SourceManual      = "manual"

	AssignedByAutopilot = "autopilot"
	AssignedByCron      = "cron"
)
