// Package config loads runtime configuration for the EduBlog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. A .env file in the working directory, if present, and EDUBLOG_*
//     environment variables. Real environment variables beat .env entries.
//  4. Command-line flags.
//
// Supported flags
//
//	-l float    latency scale (0 disables simulated delays)
//	-p string   password for teachers created at runtime
//	-ttl int    session lifetime in seconds (0 = never expires)
//	-noseed     start with an empty school
//
// Environment variables
//
//	EDUBLOG_LATENCY_SCALE, EDUBLOG_DEFAULT_TEACHER_PASSWORD,
//	EDUBLOG_SESSION_SECRET, EDUBLOG_SESSION_TTL ("30m"), EDUBLOG_SEED,
//	EDUBLOG_LOG_LEVEL, EDUBLOG_LOG_FORMAT, EDUBLOG_LOG_BACKEND
//
// # File schema
//
// Durations use timex.Duration, so values can be strings like "30m" or
// integer nanoseconds:
//
//	{
//	  "latency_scale": 0.5,
//	  "default_teacher_password": "123456",
//	  "session_secret": "change-me",
//	  "session_ttl": "30m",
//	  "seed": true,
//	  "log_level": "debug",
//	  "log_format": "json",
//	  "log_backend": "zerolog"
//	}
package config
