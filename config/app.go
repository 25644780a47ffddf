package config

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	Env         string `env:"APP_ENV" default:"dev"`
	// Cron expression for the daily overdue-rental reminder.
	ReminderSchedule string `env:"REMINDER_SCHEDULE" default:"@daily"`
}
