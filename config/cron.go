package config

// CronJob pairs a cron schedule with the function to run.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs maps job names to config-declared jobs. Application jobs (catalog
// warm refresh) register through cron.Register at wiring time instead.
var CronJobs = map[string]CronJob{
	// Add more jobs here
}
