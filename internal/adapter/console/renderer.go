// Package console renders run reports and the spacecraft catalog as terminal tables.
package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/couchcryptid/astronaut-etl/internal/domain"
)

const notAvailable = "n/a"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	messageStyle = lipgloss.NewStyle().Italic(true)
	statusStyles = map[domain.HealthStatus]lipgloss.Style{
		domain.HealthNormal:   cellStyle.Foreground(lipgloss.Color("42")),
		domain.HealthMonitor:  cellStyle.Foreground(lipgloss.Color("220")),
		domain.HealthAtRisk:   cellStyle.Foreground(lipgloss.Color("208")),
		domain.HealthCritical: cellStyle.Foreground(lipgloss.Color("#FF5733")),
	}
)

// Renderer writes a human-readable report to out.
// It implements pipeline.ReportLoader.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Load renders every section of the report.
func (r *Renderer) Load(_ context.Context, report domain.RunReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("Run %s", report.RunID)))
	fmt.Fprintf(&b, "generated %s, seed %d, %d mission days\n\n",
		report.GeneratedAt.Format("2006-01-02 15:04:05 MST"), report.Seed, report.MissionDays)

	section(&b, fmt.Sprintf("Astronauts (%d)", len(report.Profiles)), astronautTable(report.Profiles))
	section(&b, "Spacecraft", spacecraftTable(report.Summaries))
	section(&b, "Crew diversity", diversityTable(report.Diversity))
	section(&b, "Agencies", agencyTable(report.Agencies))
	section(&b, "Weather correlation", correlationTable(report.Weather, report.Correlation))
	fmt.Fprintf(&b, "%s\n", messageStyle.Render(report.Analysis.Message))

	_, err := io.WriteString(r.out, b.String())
	return err
}

func section(b *strings.Builder, title string, t *table.Table) {
	fmt.Fprintf(b, "%s\n%s\n\n", titleStyle.Render(title), t.Render())
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func astronautTable(profiles []domain.AstronautProfile) *table.Table {
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			p.Astronaut.Name,
			p.Astronaut.Craft,
			p.Astronaut.SpacecraftType,
			formatFloat(p.Distance.TotalDistanceKM, 0),
			formatFloat(p.Distance.OrbitsCompleted, 1),
			string(p.Health.HealthStatus),
			strconv.Itoa(p.Health.RiskScore),
			p.Demographics.Nationality,
		})
	}

	const statusCol = 5
	return newTable("Name", "Craft", "Type", "Distance (km)", "Orbits", "Health", "Risk", "Nationality").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == statusCol && row >= 0 && row < len(profiles) {
				if s, ok := statusStyles[profiles[row].Health.HealthStatus]; ok {
					return s
				}
			}
			return cellStyle
		})
}

func spacecraftTable(summaries []domain.CraftSummary) *table.Table {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		occupancy := notAvailable
		if s.Occupancy != nil {
			occupancy = fmt.Sprintf("%.0f%%", *s.Occupancy*100)
		}
		rows = append(rows, []string{
			s.Craft,
			s.Model,
			strconv.Itoa(s.CrewCount),
			formatInt(s.CrewCapacity),
			occupancy,
			strings.Join(s.Agencies, ", "),
		})
	}
	return newTable("Craft", "Model", "Crew", "Capacity", "Occupancy", "Agencies").Rows(rows...)
}

func diversityTable(reports []domain.DiversityReport) *table.Table {
	rows := make([][]string, 0, len(reports))
	for _, d := range reports {
		rows = append(rows, []string{
			d.Spacecraft,
			strconv.Itoa(d.CrewSize),
			fmt.Sprintf("%.2f", d.GenderDiversity),
			fmt.Sprintf("%.2f", d.NationalityDiversity),
			fmt.Sprintf("%.2f", d.ExperienceDiversity),
			fmt.Sprintf("%.2f", d.OverallDiversity),
			string(d.Rating),
		})
	}
	return newTable("Craft", "Crew", "Gender", "Nationality", "Experience", "Overall", "Rating").Rows(rows...)
}

func agencyTable(counts []domain.AgencyCount) *table.Table {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Agency, strconv.Itoa(c.Astronauts)})
	}
	return newTable("Agency", "Astronauts").Rows(rows...)
}

func correlationTable(weather domain.WeatherObservation, rec domain.CorrelationRecord) *table.Table {
	conditions := weather.WeatherDescription
	if conditions == "" {
		conditions = notAvailable
	}
	return newTable("Timestamp", "Astronauts", "Spacecraft", "Temp (°C)", "Wind (km/h)", "Cloud (%)", "Conditions").
		Row(
			rec.Timestamp,
			strconv.Itoa(rec.NumAstronauts),
			strconv.Itoa(rec.NumSpacecraft),
			strconv.FormatFloat(rec.Temperature, 'f', 1, 64),
			strconv.FormatFloat(rec.WindSpeed, 'f', 1, 64),
			strconv.FormatFloat(rec.CloudCover, 'f', 0, 64),
			conditions,
		)
}

func formatFloat(v *float64, prec int) string {
	if v == nil {
		return notAvailable
	}
	return strconv.FormatFloat(*v, 'f', prec, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return notAvailable
	}
	return strconv.Itoa(*v)
}
