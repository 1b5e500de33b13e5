package session

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/biocycle/activity"
	"github.com/katalvlaran/biocycle/biorhythm"
	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/pattern"
	"github.com/katalvlaran/biocycle/sampler"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// WriteReadings prints one row per cycle reading.
func WriteReadings(w io.Writer, readings []biorhythm.Reading) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "CYCLE\tVALUE\tPERCENT\tPHASE")
	for _, r := range readings {
		fmt.Fprintf(tw, "%s\t%+.4f\t%.1f%%\t%s\n", r.Cycle, r.Value, r.Percent, r.Phase)
	}

	return tw.Flush()
}

// WriteSeries prints one row per sampled day.
func WriteSeries(w io.Writer, s sampler.Series) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "DATE\t%s\n", s.Cycle)
	for _, smp := range s.Samples {
		fmt.Fprintf(tw, "%s\t%+.4f\n", calendar.Format(smp.Date), smp.Value)
	}

	return tw.Flush()
}

// WriteDates prints one date per line, or "none".
func WriteDates(w io.Writer, dates []time.Time) error {
	if len(dates) == 0 {
		_, err := fmt.Fprintln(w, "none")
		return err
	}
	for _, d := range dates {
		if _, err := fmt.Fprintln(w, calendar.Format(d)); err != nil {
			return err
		}
	}

	return nil
}

// WritePeriods prints one row per period, or "none".
func WritePeriods(w io.Writer, periods []pattern.Period) error {
	if len(periods) == 0 {
		_, err := fmt.Fprintln(w, "none")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "CYCLE\tSTART\tEND\tDAYS")
	for _, p := range periods {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", p.Cycle, calendar.Format(p.Start), calendar.Format(p.End), p.Days())
	}

	return tw.Flush()
}

// WriteActivities prints the registry listing, or "no activities".
func WriteActivities(w io.Writer, acts []activity.Activity) error {
	if len(acts) == 0 {
		_, err := fmt.Fprintln(w, "no activities")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tTHRESHOLD")
	for _, a := range acts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\n", a.ID, a.Name, a.Category, a.Threshold)
	}

	return tw.Flush()
}

// WriteActivityPeriods prints each activity with its periods. Activities
// without a favorable period get a single "-" row.
func WriteActivityPeriods(w io.Writer, joined []ActivityPeriods) error {
	if len(joined) == 0 {
		_, err := fmt.Fprintln(w, "no activities")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ACTIVITY\tCATEGORY\tSTART\tEND\tDAYS")
	for _, ap := range joined {
		if len(ap.Periods) == 0 {
			fmt.Fprintf(tw, "%s\t%s\t-\t-\t0\n", ap.Activity.Name, ap.Activity.Category)
			continue
		}
		for _, p := range ap.Periods {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
				ap.Activity.Name, ap.Activity.Category,
				calendar.Format(p.Start), calendar.Format(p.End), p.Days())
		}
	}

	return tw.Flush()
}
