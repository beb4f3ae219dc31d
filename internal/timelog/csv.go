package timelog

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// CSVHeader is the first row written by WriteCSV.
var CSVHeader = []string{"UTC-Start", "UTC-End", "Hours", "Minutes", "Seconds", "Message"}

// WriteCSV exports the completed sessions, one row each, with UTC timestamps
// and the elapsed time split into hours, minutes and seconds.
func WriteCSV(w io.Writer, log *Log) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return err
	}

	if log != nil {
		for _, session := range log.Completed {
			if session.End == nil {
				continue
			}
			seconds := int64(session.End.Sub(session.Start) / time.Second)
			hours, minutes, secs := splitSeconds(seconds)
			row := []string{
				session.Start.Std().UTC().Format(CSVLayout),
				session.End.Std().UTC().Format(CSVLayout),
				strconv.FormatInt(hours, 10),
				strconv.FormatInt(minutes, 10),
				strconv.FormatInt(secs, 10),
				session.Text(),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
