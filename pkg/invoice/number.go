// pkg/invoice/number.go

package invoice

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"
)

// numberPattern matches generated PDF filenames, capturing the sequence.
var numberPattern = regexp.MustCompile(`^invoice_INV-(\d{8})-(\d{3})\.pdf$`)

// maxDailySequence is the largest sequence the three-digit field can hold.
const maxDailySequence = 999

// Number formats an invoice number as INV-YYYYMMDD-NNN.
func Number(date time.Time, seq int) string {
	return fmt.Sprintf("INV-%s-%03d", date.Format("20060102"), seq)
}

// Filename returns the PDF filename for an invoice number.
func Filename(number string) string {
	return fmt.Sprintf("invoice_%s.pdf", number)
}

// NextNumber returns the next invoice number for the given date by scanning
// dir for invoices already issued that day. A missing directory counts as
// empty, so the first invoice of a day is always NNN=001.
func NextNumber(dir string, date time.Time) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Number(date, 1), nil
		}
		return "", fmt.Errorf("scanning invoice directory: %w", err)
	}

	day := date.Format("20060102")
	maxSeq := 0
	for _, e := range entries {
		m := numberPattern.FindStringSubmatch(e.Name())
		if m == nil || m[1] != day {
			continue
		}
		seq, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}

	if maxSeq >= maxDailySequence {
		return "", fmt.Errorf("invoice limit reached for %s: sequence cannot exceed %d", day, maxDailySequence)
	}
	return Number(date, maxSeq+1), nil
}
