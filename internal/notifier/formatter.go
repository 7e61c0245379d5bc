package notifier

import (
	"fmt"
	"strings"
	"time"

	"StockExpert/internal/model"
)

// FormatReport formats a single ticker report as a Telegram message,
// mirroring the metrics shown on the dashboard.
func FormatReport(r *model.TickerReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📌 <b>%s</b> (%s)\n", r.Name, r.Symbol))
	b.WriteString(fmt.Sprintf("Price: %.1f (%+.1f)\n", r.Price, r.Change))

	verb := "sell"
	if r.Target.Direction == model.DirectionBuy {
		verb = "buy"
	}
	if r.Status.Achieved {
		b.WriteString(fmt.Sprintf("✨ <b>%s target %.0f reached</b>\n", verb, r.Target.Threshold))
	} else {
		b.WriteString(fmt.Sprintf("⏳ %s target %.0f — %.1f away (%+.1f%%)\n",
			verb, r.Target.Threshold, absf(r.Status.Distance), r.Status.Percent))
	}

	ind := r.Indicators
	if model.Defined(ind.RSI) {
		b.WriteString(fmt.Sprintf("RSI(14): %.0f\n", ind.RSI))
	}
	if model.Defined(ind.UpperBand) {
		b.WriteString(fmt.Sprintf("Bands: %.1f / %.1f\n", ind.LowerBand, ind.UpperBand))
	}
	b.WriteString(fmt.Sprintf("Advice: <b>%s</b>\n", r.Advice))

	if r.Forecast != nil {
		b.WriteString(fmt.Sprintf("🔮 Forecast: next %.1f / week %.1f\n",
			r.Forecast.NextValue, r.Forecast.WeekValue))
	}

	return b.String()
}

// FormatBatch formats a whole refresh cycle, one section per ticker,
// failed tickers listed at the end.
func FormatBatch(results []model.TickerResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>StockExpert</b> | %s\n\n", time.Now().Format("2006-01-02 15:04")))

	var failed []model.TickerResult
	for _, res := range results {
		if res.Err != nil || res.Report == nil {
			failed = append(failed, res)
			continue
		}
		b.WriteString(FormatReport(res.Report))
		b.WriteString("\n")
	}
	for _, res := range failed {
		b.WriteString(fmt.Sprintf("❌ %s: %v\n", res.Symbol, res.Err))
	}
	return b.String()
}

// FormatAlert formats the push sent when a ticker crosses a threshold:
// a reached target or an advice leaving neutral.
func FormatAlert(r *model.TickerReport) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔔 <b>%s</b> %.1f\n", r.Symbol, r.Price))
	if r.Status.Achieved {
		verb := "sell"
		if r.Target.Direction == model.DirectionBuy {
			verb = "buy"
		}
		b.WriteString(fmt.Sprintf("✨ %s target %.0f reached\n", verb, r.Target.Threshold))
	}
	if r.Advice != model.AdviceNeutral {
		b.WriteString(fmt.Sprintf("⚠️ %s", r.Advice))
		if model.Defined(r.Indicators.RSI) {
			b.WriteString(fmt.Sprintf(" (RSI %.0f)", r.Indicators.RSI))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
