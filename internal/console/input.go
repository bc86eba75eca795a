package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func (c *Console) prompt(label string) string {
	fmt.Printf("%s: ", label)
	line, _ := c.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (c *Console) promptDefault(label, def string) string {
	fmt.Printf("%s [%s]: ", label, def)
	line, _ := c.in.ReadString('\n')
	v := strings.TrimSpace(line)
	if v == "" {
		return def
	}
	return v
}

func (c *Console) promptID(label string) (uint, error) {
	return parseID(c.prompt(label))
}

// parseID requires a positive integer.
func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid ID %q", s)
	}
	return uint(n), nil
}

// parseOptionalID maps blank or NULL to nil, anything unparsable to nil.
func parseOptionalID(s string) *uint {
	if s == "" || strings.EqualFold(s, "NULL") {
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(n)
	return &id
}

// applyIDInput implements blank-keeps / NULL-clears update semantics.
func applyIDInput(s string, current *uint) *uint {
	if s == "" {
		return current
	}
	if strings.EqualFold(s, "NULL") {
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return current
	}
	id := uint(n)
	return &id
}

func applyFloatInput(s string, current *float64) *float64 {
	if s == "" {
		return current
	}
	if strings.EqualFold(s, "NULL") {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return current
	}
	return &f
}

func parseOptionalFloat(s string) *float64 {
	if s == "" || strings.EqualFold(s, "NULL") {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseOptionalInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseIntOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

const timestampLayout = "2006-01-02 15:04:05"

func parseOptionalTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
