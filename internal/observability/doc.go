// Package observability builds the structured logger shared by the CatBot API.
//
// Loggers are zap-based and passed explicitly to the components that log;
// nothing in the service reads a global logger.
package observability
