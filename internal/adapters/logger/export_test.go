package logger

// FormatError exposes error formatting for tests.
var FormatError = formatError
