package common

// DefaultTeacherPassword is assigned to teachers created at runtime unless
// the configuration overrides it.
const DefaultTeacherPassword = "123456"
