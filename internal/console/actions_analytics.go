package console

import (
	"fmt"
	"strings"

	"hnl-console/internal/analytics"

	"github.com/fatih/color"
)

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func (c *Console) portalStabilityScanner() error {
	rows, err := c.store.PortalStability()
	if err != nil {
		return fmt.Errorf("portal stability query: %w", err)
	}

	color.Cyan("=== Portal Stability Scanner (all time) ===")
	for _, row := range rows {
		_, level := analytics.PortalRisk(row.EventCount, row.SevereCount, row.Status == "Active")
		paint := color.Green
		switch level {
		case "CRITICAL":
			paint = color.Red
		case "HIGH":
			paint = color.Yellow
		}
		paint("[Portal %d] %-18s | Status: %-6s | Events: %2d | Severe: %2d | Risk: %s",
			row.PortalID, row.Name, row.Status, row.EventCount, row.SevereCount, level)
		fmt.Printf("    %s -> %s\n", deref(row.OriginName, "Unknown"), deref(row.DestinationName, "Unknown"))
	}
	fmt.Println()
	return nil
}

func (c *Console) entityThreatAnalyzer() error {
	id, err := c.promptID("Entity_ID")
	if err != nil {
		return err
	}

	entity, err := c.store.GetEntity(id)
	if err != nil {
		return fmt.Errorf("entity %d: %w", id, err)
	}

	color.Magenta("=== Entity Threat Analyzer — [%d] %s ===", entity.ID, entity.Name)
	threatPaint := color.Yellow
	if entity.ThreatLevel == "Critical" {
		threatPaint = color.Red
	}
	threatPaint("Threat Level: %s", entity.ThreatLevel)

	sightings, err := c.store.EntitySightings(id)
	if err != nil {
		return fmt.Errorf("sightings for entity %d: %w", id, err)
	}

	totalMinutes := 0
	locations := make([]string, 0, len(sightings))
	for _, s := range sightings {
		totalMinutes += analytics.ExposureMinutes(s.StartTime, s.EndTime)
		locations = append(locations, deref(s.LocationName, "Unknown"))
	}

	fmt.Printf("Total Sightings: %d\n", len(sightings))
	fmt.Printf("Total Exposure Duration: %d minutes\n", totalMinutes)

	zones := analytics.Hotzones(locations)
	if len(zones) == 0 {
		fmt.Println("Hotzones: None recorded.")
	} else {
		parts := make([]string, len(zones))
		for i, z := range zones {
			parts[i] = fmt.Sprintf("%s(%d)", z.Name, z.Count)
		}
		fmt.Printf("Hotzones: %s\n", strings.Join(parts, ", "))
	}

	_, recommendation := analytics.AssessEntity(len(sightings), entity.ThreatLevel)
	color.Cyan("Recommended Response: %s", recommendation)
	fmt.Println()
	return nil
}

func (c *Console) realityDisturbanceMap() error {
	rows, err := c.store.DisturbanceIndicators()
	if err != nil {
		return fmt.Errorf("disturbance query: %w", err)
	}

	indicators := make([]float64, len(rows))
	for i, r := range rows {
		indicators[i] = r.Indicator
	}
	bars := analytics.ScaleDisturbance(indicators)

	color.Cyan("=== Reality Disturbance Map ===")
	for i, row := range rows {
		bar := bars[i]
		paint := color.Green
		switch bar.Bucket {
		case "CRITICAL":
			paint = color.Red
		case "HIGH", "MEDIUM":
			paint = color.Yellow
		}
		paint("%-8s %-25s %-20s (%s)",
			bar.Bucket, row.Name, strings.Repeat("#", bar.Bars), row.WorldType)
	}
	fmt.Println()
	return nil
}

func (c *Console) psychicActivityDashboard() error {
	subjects, err := c.store.PsychicSubjects()
	if err != nil {
		return fmt.Errorf("psychic subjects query: %w", err)
	}

	color.Cyan("=== Psychic Activity Dashboard ===")
	for _, sub := range subjects {
		color.Magenta("[%d] %s — Ability: %s | Power: %d | Control: %d",
			sub.PersonID, sub.Name, sub.AbilityType, sub.PowerLevel, sub.ControlScore)

		experiments, err := c.store.RecentExperiments(sub.PersonID, 3)
		if err != nil {
			return fmt.Errorf("experiments for %d: %w", sub.PersonID, err)
		}
		if len(experiments) > 0 {
			fmt.Println("  Recent Experiments:")
			for _, exp := range experiments {
				fmt.Printf("    - (%d) %s: %s\n", exp.ID, exp.Date.Format("2006-01-02"), shorten(exp.Purpose, 60))
			}
		}

		events, err := c.store.RecentVictimEvents(sub.PersonID, 3)
		if err != nil {
			return fmt.Errorf("linked events for %d: %w", sub.PersonID, err)
		}
		if len(events) > 0 {
			fmt.Println("  Linked Events:")
			for _, ev := range events {
				fmt.Printf("    - (%d) %s: %s\n", ev.ID, ev.Date.Format("2006-01-02"), shorten(ev.Description, 60))
			}
		}
	}
	fmt.Println()
	return nil
}

func (c *Console) temporalBreachTimeline() error {
	events, err := c.store.ListEventsChronological()
	if err != nil {
		return fmt.Errorf("timeline query: %w", err)
	}

	color.Cyan("=== Temporal Breach Timeline ===")
	for _, ev := range events {
		paint := color.Green
		switch ev.Severity {
		case "Severe":
			paint = color.Red
		case "Moderate":
			paint = color.Yellow
		}
		paint("%s %s - [%s] %s", ev.Date.Format("2006-01-02"), ev.Time, ev.Severity, shorten(ev.Description, 70))
	}
	fmt.Println()
	return nil
}

func (c *Console) globalSearch() error {
	query := c.prompt("Search query (text or ID)")
	if query == "" {
		return fmt.Errorf("empty query")
	}

	res, err := c.store.GlobalSearch(query)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	color.Magenta("=== Search Results for %q ===", query)
	if res.Empty() {
		color.Red("No results found.")
		fmt.Println()
		return nil
	}

	if len(res.Entities) > 0 {
		color.Yellow("Entities:")
		for _, e := range res.Entities {
			fmt.Printf("  [%d] %s · %s · %s (%s)\n", e.ID, e.Name, e.Species, e.ThreatLevel, e.OriginWorld)
		}
	}
	if len(res.Locations) > 0 {
		color.Yellow("Locations:")
		for _, l := range res.Locations {
			fmt.Printf("  [%d] %s (%s) - %s\n", l.ID, l.Name, l.WorldType, shorten(l.Description, 40))
		}
	}
	if len(res.Events) > 0 {
		color.Yellow("Events:")
		for _, e := range res.Events {
			fmt.Printf("  [%d] %s %s - %s [%s/%s]\n",
				e.ID, e.Date.Format("2006-01-02"), e.Time, shorten(e.Description, 50), e.Severity, e.Outcome)
		}
	}
	if len(res.Persons) > 0 {
		color.Yellow("Persons:")
		for _, p := range res.Persons {
			alias := ""
			if p.KnownAliases != "" {
				alias = " · aka " + p.KnownAliases
			}
			fmt.Printf("  [%d] %s - %s (%s, %s)%s\n", p.ID, p.Name, p.Role, p.Status, p.Affiliation, alias)
		}
	}
	if len(res.Portals) > 0 {
		color.Yellow("Portals:")
		for _, p := range res.Portals {
			fmt.Printf("  [%d] %s - %s\n", p.ID, p.Name, p.Status)
		}
	}
	if len(res.Artifacts) > 0 {
		color.Yellow("Artifacts:")
		for _, a := range res.Artifacts {
			fmt.Printf("  [%d] %s - %s (Anomaly %d)\n", a.ID, a.Name, a.Type, a.AnomalyLevel)
		}
	}
	if len(res.Reports) > 0 {
		color.Yellow("Reports:")
		for _, r := range res.Reports {
			fmt.Printf("  [%d] %s - %s [%s]\n", r.ReportID, r.Date, shorten(r.Summary, 60), r.Verdict)
		}
	}
	if len(res.Experiments) > 0 {
		color.Yellow("Experiments:")
		for _, x := range res.Experiments {
			fmt.Printf("  [%d] %s - %s (%s)\n", x.ID, x.Date.Format("2006-01-02"), shorten(x.Purpose, 60), x.Confidentiality)
		}
	}
	fmt.Println()
	return nil
}

func shorten(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
