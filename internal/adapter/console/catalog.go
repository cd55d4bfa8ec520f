package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/couchcryptid/astronaut-etl/internal/domain"
)

// RenderCatalog writes the reference spacecraft catalog as a table, one row
// per known craft in sorted order.
func RenderCatalog(out io.Writer) error {
	crafts := domain.KnownCrafts()
	rows := make([][]string, 0, len(crafts))
	for _, craft := range crafts {
		info, _ := domain.LookupSpacecraft(craft)
		rows = append(rows, []string{
			craft,
			info.Model,
			info.Type,
			formatInt(info.LaunchYear),
			formatInt(info.CrewCapacity),
			formatFloat(info.AltitudeKM, 0),
			formatFloat(info.OrbitalPeriodMin, 2),
			strings.Join(info.Agencies, ", "),
		})
	}

	t := newTable("Craft", "Model", "Type", "Launched", "Capacity", "Altitude (km)", "Period (min)", "Agencies").
		Rows(rows...)
	_, err := fmt.Fprintf(out, "%s\n%s\n", titleStyle.Render("Spacecraft catalog"), t.Render())
	return err
}
