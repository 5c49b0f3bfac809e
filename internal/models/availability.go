package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
)

// Slot is one caregiver's availability on one calendar date.
type Slot struct {
	Caregiver string
	Date      time.Time
}

// ParseDate parses a calendar date such as 2023-06-01 (or 2023-6-1) into
// UTC midnight. Malformed input yields common.ErrInvalidDate.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(common.DateInputLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, common.ErrInvalidDate
	}
	return d, nil
}

// FormatDate renders d as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(common.DateLayout)
}

// Schedule is what a schedule search shows for one date: the caregivers
// still free on it and every vaccine lot.
type Schedule struct {
	Date       time.Time
	Caregivers []string
	Vaccines   []Vaccine
}
