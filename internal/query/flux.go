package query

import (
	"strconv"
	"strings"
)

// Flux renders s for InfluxDB 2.x. Telemetry is stored with the table as
// measurement, the device id as tag "id" and the measure name as field.
func (s Statement) Flux() string {
	var b strings.Builder

	b.WriteString("from(bucket: ")
	b.WriteString(strconv.Quote(s.Source.Database))
	b.WriteString(")\n")
	b.WriteString("  |> range(start: -")
	b.WriteString(s.Window.String())
	b.WriteString(")\n")
	b.WriteString("  |> filter(fn: (r) => r._measurement == ")
	b.WriteString(strconv.Quote(s.Source.Table))
	b.WriteString(")\n")

	if s.Match != MatchAll && len(s.Devices) > 0 {
		b.WriteString("  |> filter(fn: (r) => ")
		for i, id := range s.Devices {
			if i > 0 {
				b.WriteString(" or ")
			}
			b.WriteString("r.id == ")
			b.WriteString(strconv.Quote(string(id)))
		}
		b.WriteString(")\n")
	}

	b.WriteString("  |> group()\n")
	b.WriteString("  |> sort(columns: [\"_time\"], desc: ")
	b.WriteString(strconv.FormatBool(s.NewestFirst))
	b.WriteString(")")
	return b.String()
}
