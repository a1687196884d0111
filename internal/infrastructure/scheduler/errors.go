package scheduler

import "errors"

var (
	// ErrJobNotFound is returned when a job name is not registered
	ErrJobNotFound = errors.New("job not found")

	// ErrJobAlreadyRunning is returned by RunNow while the same job is in progress
	ErrJobAlreadyRunning = errors.New("job already in progress")

	// ErrInvalidConfig is returned for a bad cron spec or a duplicate job name
	ErrInvalidConfig = errors.New("invalid scheduler configuration")
)
