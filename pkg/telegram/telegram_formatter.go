package telegram

import (
	"fmt"
	"strings"

	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/utils"
)

// FormatOrderClosedForTelegram formats a closed simulated order into a Markdown message.
func FormatOrderClosedForTelegram(order entity.Order) string {
	var builder strings.Builder

	var title, emoji string
	result := entity.ResultSimulated
	if order.Result != nil {
		result = *order.Result
	}
	switch result {
	case entity.ResultWon:
		title = "Target alcanzado"
		emoji = "🎯"
	case entity.ResultLost:
		title = "Stop alcanzado"
		emoji = "⚠️"
	default:
		title = "Orden cerrada"
		emoji = "🔔"
	}

	builder.WriteString(fmt.Sprintf("%s *[%s] %s*\n", emoji, order.Ticker, title))
	builder.WriteString(fmt.Sprintf("📌 Resultado: `%s` (score %s, %s)\n", result, formatFloat(order.Score), order.State))
	if order.EntryPrice != nil {
		builder.WriteString(fmt.Sprintf("💵 Entrada: %s\n", formatFloat(*order.EntryPrice)))
	}
	if order.ClosePrice != nil {
		builder.WriteString(fmt.Sprintf("💰 Cierre: %s\n", formatFloat(*order.ClosePrice)))
	}
	if order.ClosedAt != nil {
		builder.WriteString(utils.PrettyDate(*order.ClosedAt))
		builder.WriteString("\n")
	}
	return builder.String()
}

// FormatAutopilotRunForTelegram formats one autopilot summary into a Markdown message.
func FormatAutopilotRunForTelegram(entry entity.AutopilotLogEntry) string {
	var builder strings.Builder
	builder.WriteString("🤖 *Autopilot*\n")
	builder.WriteString(fmt.Sprintf("🎚 Umbral: %s · Asignado a: %s\n", formatFloat(entry.Threshold), entry.AssignedTo))
	builder.WriteString(fmt.Sprintf("📝 Tareas nuevas: %d\n", entry.CreatedTasks))
	builder.WriteString(fmt.Sprintf("🟢 Órdenes abiertas: %d\n", entry.CreatedOrders))
	builder.WriteString(fmt.Sprintf("🏁 Órdenes cerradas: %d\n", entry.ClosedOrders))
	builder.WriteString(fmt.Sprintf("📊 Oportunidades: %d\n", entry.TopCount))
	builder.WriteString(utils.PrettyDate(entry.Ts))
	builder.WriteString("\n")
	return builder.String()
}

func formatFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".")
}
