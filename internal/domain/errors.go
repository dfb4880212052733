package domain

import "errors"

var (
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrInvalidMilestone  = errors.New("invalid milestone")
	ErrSectionNotFound   = errors.New("section not found")
	ErrInvalidSection    = errors.New("invalid section")
)
