package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/cycle"
	"go.uber.org/zap"
)

// Usage lists the commands understood by Exec.
const Usage = `commands:
  birth DATE                    set the birth date (YYYY-MM-DD)
  add CYCLE [THRESHOLD] NAME... register an activity; THRESHOLD
                                defaults to the session default
  remove ID                     delete an activity
  list                          show registered activities
  today DATE                    readings for DATE
  series CYCLE FROM TO          daily values
  critical CYCLE FROM TO        critical days
  periods FROM TO               favorable periods per activity
  help                          this text
  quit                          leave the session
`

// Exec runs one command line and writes its output to w. Blank lines and
// lines starting with '#' are ignored. quit reports whether the line asked to
// end the session.
func (s *Session) Exec(w io.Writer, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]
	s.logger.Debug("exec", zap.String("verb", verb), zap.Int("args", len(args)))

	switch verb {
	case "quit", "exit":
		return true, nil
	case "help":
		_, err = io.WriteString(w, Usage)
	case "birth":
		err = s.execBirth(w, args)
	case "add":
		err = s.execAdd(w, args)
	case "remove":
		err = s.execRemove(w, args)
	case "list":
		err = WriteActivities(w, s.registry.List())
	case "today":
		err = s.execToday(w, args)
	case "series":
		err = s.execSeries(w, args)
	case "critical":
		err = s.execCritical(w, args)
	case "periods":
		err = s.execPeriods(w, args)
	default:
		err = fmt.Errorf("%q: %w", verb, ErrUnknownCommand)
	}

	return false, err
}

// Run executes commands from r until EOF or quit. Command errors are written
// to w as "error: ..." and do not stop the loop; only read errors are
// returned.
func (s *Session) Run(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		quit, err := s.Exec(w, sc.Text())
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}

	return sc.Err()
}

func (s *Session) execBirth(w io.Writer, args []string) error {
	if len(args) != 1 {
		return usage("birth DATE")
	}
	d, err := calendar.Parse(args[0])
	if err != nil {
		return err
	}

	_, had := s.BirthDate()
	switch changed := s.SetBirthDate(d); {
	case !changed:
		_, err = fmt.Fprintf(w, "birth date unchanged: %s\n", calendar.Format(d))
	case had:
		_, err = fmt.Fprintf(w, "birth date changed to %s; earlier results are stale\n", calendar.Format(d))
	default:
		_, err = fmt.Fprintf(w, "birth date set to %s\n", calendar.Format(d))
	}

	return err
}

func (s *Session) execAdd(w io.Writer, args []string) error {
	if len(args) < 2 {
		return usage("add CYCLE [THRESHOLD] NAME...")
	}
	c, err := cycle.Parse(args[0])
	if err != nil {
		return err
	}

	// a numeric second word is the threshold only when a name follows it
	th, name := s.threshold, args[1:]
	if len(args) >= 3 {
		if v, err := strconv.ParseFloat(args[1], 64); err == nil {
			th, name = v, args[2:]
		}
	}

	a, err := s.registry.Add(strings.Join(name, " "), c, th)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "added %s\n", a.ID)

	return err
}

func (s *Session) execRemove(w io.Writer, args []string) error {
	if len(args) != 1 {
		return usage("remove ID")
	}
	if err := s.registry.Remove(args[0]); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "removed %s\n", args[0])

	return err
}

func (s *Session) execToday(w io.Writer, args []string) error {
	if len(args) != 1 {
		return usage("today DATE")
	}
	d, err := calendar.Parse(args[0])
	if err != nil {
		return err
	}
	readings, err := s.Today(d)
	if err != nil {
		return err
	}

	return WriteReadings(w, readings)
}

func (s *Session) execSeries(w io.Writer, args []string) error {
	c, from, to, err := parseCycleRange("series", args)
	if err != nil {
		return err
	}
	series, err := s.Series(c, from, to)
	if err != nil {
		return err
	}

	return WriteSeries(w, series)
}

func (s *Session) execCritical(w io.Writer, args []string) error {
	c, from, to, err := parseCycleRange("critical", args)
	if err != nil {
		return err
	}
	days, err := s.CriticalDays(c, from, to)
	if err != nil {
		return err
	}

	return WriteDates(w, days)
}

func (s *Session) execPeriods(w io.Writer, args []string) error {
	if len(args) != 2 {
		return usage("periods FROM TO")
	}
	from, to, err := parseRange(args[0], args[1])
	if err != nil {
		return err
	}
	joined, err := s.ActivityPeriods(from, to)
	if err != nil {
		return err
	}

	return WriteActivityPeriods(w, joined)
}

func parseCycleRange(verb string, args []string) (cycle.Cycle, time.Time, time.Time, error) {
	if len(args) != 3 {
		return 0, time.Time{}, time.Time{}, usage(verb + " CYCLE FROM TO")
	}
	c, err := cycle.Parse(args[0])
	if err != nil {
		return 0, time.Time{}, time.Time{}, err
	}
	from, to, err := parseRange(args[1], args[2])
	if err != nil {
		return 0, time.Time{}, time.Time{}, err
	}

	return c, from, to, nil
}

func parseRange(a, b string) (from, to time.Time, err error) {
	if from, err = calendar.Parse(a); err != nil {
		return
	}
	to, err = calendar.Parse(b)

	return
}

func usage(form string) error {
	return fmt.Errorf("usage: %s: %w", form, ErrUsage)
}
