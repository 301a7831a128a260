package scheduler

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Saikabilane/AutoSense/internal/domain"
)

// Render печатает календарь выровненной таблицей со всеми сохраняемыми колонками
func Render(cal *domain.Calendar, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, strings.Join(domain.CalendarColumns, "\t")); err != nil {
		return err
	}

	for _, s := range cal.Slots {
		_, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			s.ID, s.Day, s.Time, s.Status, s.VehicleID, s.RiskLevel, s.ServiceType,
			s.Capacity, s.Used, s.VehicleType)
		if err != nil {
			return err
		}
	}

	return tw.Flush()
}
