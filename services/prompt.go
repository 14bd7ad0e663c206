package services

import (
	"fmt"
	"strings"

	"kotseai-backend/models"
)

// Prompt construction is pure string assembly: user fields are inserted as
// literal text since the result is sent to a text model, never executed.
// Field presence is the caller's responsibility (validated in the services
// before any prompt is built).

const schedulePromptHeader = `You are an ASE-certified master technician.
Output MUST be pure JSON, no markdown, no commentary.`

const schedulePromptInstructions = `Instructions
1. List only maintenance items due NOW or within the next 5 000 km.
2. Use OEM severe-service intervals if the location warrants it; otherwise normal schedule.
3. Return a single JSON object with the keys:
   "immediate"  : array of items (0-90 days),
   "soon"       : array of items (91-180 days),
   "later"      : array of items (181-365 days).
4. Each array element is an object:
   {
     "component": string, // e.g. "Engine oil"
     "action"   : string, // e.g. "Replace"
     "interval" : string, // e.g. "Every 10 000 km or 6 months"
     "reason"   : string  // 1-sentence why it matters
   }
5. Arrays may be empty; do not add extra keys.
6. Output minified JSON on a single line, no back-ticks, no labels.`

// BuildSchedulePrompt renders the maintenance-schedule instruction for the
// generation model. The output contract it requests is exactly what
// ParseMaintenanceSchedule expects.
func BuildSchedulePrompt(p *models.VehicleProfile) string {
	var b strings.Builder
	b.WriteString(schedulePromptHeader)
	b.WriteString("\n\nVehicle:\n")
	fmt.Fprintf(&b, "- Make:  %s\n", p.Make)
	fmt.Fprintf(&b, "- Model: %s\n", p.Model)
	fmt.Fprintf(&b, "- Year:  %s\n", p.Year)
	fmt.Fprintf(&b, "- Current odometer: %d km\n", p.MileageKm)
	fmt.Fprintf(&b, "- Transmission: %s\n", p.Transmission)
	fmt.Fprintf(&b, "- Location: %s (use local climate/road-salt/dust/altitude to pick severe-service schedule when applicable)\n", p.Location)
	b.WriteString("- Make sure the information is from the Philippines as much as possible\n")
	b.WriteString("\n")
	b.WriteString(schedulePromptInstructions)
	return b.String()
}

// BuildCostPrompt renders the cost-estimate instruction: a primary pipe
// table sorted by total descending with a final Grand Total row, plus a
// secondary per-item details table keyed by the same item names.
func BuildCostPrompt(p *models.VehicleProfile, items []models.CostItem, laborRatePhp int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Vehicle: %s %s %s %d km | %s\n", p.Year, p.Make, p.Model, p.MileageKm, p.Location)
	b.WriteString("Severe-service schedule if climate warrants.\n")
	fmt.Fprintf(&b, "Specific Transmission: %s\n", p.Transmission)
	b.WriteString("\nTasks due now or within 5 000 km:\n")
	for _, it := range items {
		fmt.Fprintf(&b, "%s (%s)\n", it.Component, it.Action)
	}
	b.WriteString("\nReturn ONLY markdown tables (no extra text).\n")
	b.WriteString("Table 1 columns:\n")
	b.WriteString("| Item | OEM Interval | DIY Difficulty (1 is easiest-5 is hardest) | Est. Parts ₱ | Est. Labor ₱ | Total ₱ |\n")
	b.WriteString("Sort by Total ₱ descending.\n")
	fmt.Fprintf(&b, "Labor rate: ₱ %d / hr. Use nationally-averaged PH parts prices.\n", laborRatePhp)
	b.WriteString("Add final row: | **Grand Total** | — | — | — | — | **₱ X** |\n")
	b.WriteString("\nThen Table 2 with one row per item, same item names as Table 1, columns:\n")
	b.WriteString("| Item | Why Needed | Special Tools | OEM Part # | Aftermarket ₱ | Surplus ₱ | Cost/km | Video URL |\n")
	b.WriteString("Use N/A for anything unknown or not applicable.\n")
	return b.String()
}
